package driver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateRejectsUnknownShuffleMode(t *testing.T) {
	o := DefaultOptions()
	o.ShufflePieces = ShuffleMode(99)
	assert.ErrorIs(t, o.Validate(), ErrInvalidConfiguration)
}

func TestValidateRejectsNegativeTryOpeners(t *testing.T) {
	o := DefaultOptions()
	o.TryOpeners = -1
	assert.ErrorIs(t, o.Validate(), ErrInvalidConfiguration)
}

func TestEffectiveMaxResultsDefaultsToOne(t *testing.T) {
	o := DefaultOptions()
	o.MaxResults = 0
	assert.Equal(t, 1, o.effectiveMaxResults())
	o.MaxResults = 3
	assert.Equal(t, 3, o.effectiveMaxResults())
}

func TestStallWindowDepthKeyedOverrides(t *testing.T) {
	o := DefaultOptions()
	o.RestartOnStall = 5 * time.Second
	o.StallBelow23 = 1 * time.Second
	o.StallAt23 = 2 * time.Second
	o.StallAt24 = 3 * time.Second

	assert.Equal(t, 1*time.Second, o.stallWindow(10))
	assert.Equal(t, 2*time.Second, o.stallWindow(23))
	assert.Equal(t, 3*time.Second, o.stallWindow(24))
}

func TestStallWindowFallsBackToGeneral(t *testing.T) {
	o := DefaultOptions()
	o.RestartOnStall = 5 * time.Second
	assert.Equal(t, 5*time.Second, o.stallWindow(10))
	assert.Equal(t, 5*time.Second, o.stallWindow(24))
}

func TestStallWindowUnsetMeansNoLimit(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, time.Duration(0), o.stallWindow(24))
}
