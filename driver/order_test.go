package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseOrderPreferredThenSorted(t *testing.T) {
	available := []string{"Z", "A", "Q", "C"}
	order := baseOrder(available)
	// A, C, Q are in preferredOrder (in that relative order); Z is not and
	// is appended after them.
	assert.Equal(t, []string{"A", "C", "Q", "Z"}, order)
}

func TestApplyShuffleNoneIsIdentity(t *testing.T) {
	base := []string{"A", "C", "Z"}
	order := applyShuffle(base, ShuffleNone, 1, 0)
	assert.Equal(t, base, order)
}

func TestApplyShuffleWithinBucketsLeavesPreferredPrefixAlone(t *testing.T) {
	base := baseOrder([]string{"A", "C", "Z", "Q", "W"})
	order := applyShuffle(base, ShuffleWithinBuckets, 7, 3)
	assert.Equal(t, []string{"A", "C"}, order[:2])
	assert.ElementsMatch(t, []string{"Q", "W", "Z"}, order[2:])
}

func TestApplyShuffleDeterministic(t *testing.T) {
	base := baseOrder([]string{"A", "C", "Z", "Q", "W", "M", "N"})
	a := applyShuffle(base, ShuffleFull, 42, 5)
	b := applyShuffle(base, ShuffleFull, 42, 5)
	assert.Equal(t, a, b)
}

func TestRotateLeft(t *testing.T) {
	order := []string{"A", "B", "C", "D"}
	assert.Equal(t, []string{"C", "D", "A", "B"}, rotateLeft(order, 2))
	assert.Equal(t, order, rotateLeft(order, 0))
	assert.Equal(t, rotateLeft(order, 1), rotateLeft(order, 5))
}
