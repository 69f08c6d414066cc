package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ABakker30/ballpuzzle3/fit"
	"github.com/ABakker30/ballpuzzle3/lattice"
	"github.com/ABakker30/ballpuzzle3/piece"
	"github.com/ABakker30/ballpuzzle3/search"
)

// buildTrivial builds a single 4-cell container solved by a single piece
// with one orientation.
func buildTrivial(t *testing.T) (*lattice.Lattice, *fit.Table) {
	t.Helper()
	cells := []lattice.Cell{
		{I: 0, J: 0, K: 0},
		{I: 1, J: 1, K: 0},
		{I: 1, J: 0, K: 1},
		{I: 0, J: 1, K: 1},
	}
	l, err := lattice.Build(cells)
	require.NoError(t, err)

	lib := piece.Library{
		"A": {{
			{DX: 0, DY: 0, DZ: 0},
			{DX: 1, DY: 1, DZ: 0},
			{DX: 1, DY: 0, DZ: 1},
			{DX: 0, DY: 1, DZ: 1},
		}},
	}
	return l, fit.Build(l, lib)
}

func runToCompletion(t *testing.T, s *search.State) (solved bool) {
	t.Helper()
	for i := 0; i < 100000; i++ {
		progressed, done := s.StepOnce()
		if done {
			return true
		}
		if !progressed {
			return false
		}
	}
	t.Fatal("search did not terminate within step budget")
	return false
}

func TestTrivialContainerSolves(t *testing.T) {
	l, fits := buildTrivial(t)
	tuning := search.DefaultTuning()
	tuning.Order = []string{"A"}

	s, err := search.New(l, fits, tuning)
	require.NoError(t, err)

	solved := runToCompletion(t, s)
	require.True(t, solved)
	assert.Equal(t, 1, s.PlacedCount())
	assert.Len(t, s.Placements(), 1)
	assert.Equal(t, "A", s.Placements()[0].PieceID)
	assert.GreaterOrEqual(t, s.Stats().Attempts, int64(1))
}

func TestUnsatisfiableContainerExhaustsAtRoot(t *testing.T) {
	cells := []lattice.Cell{
		{I: 0, J: 0, K: 0},
		{I: 1, J: 0, K: 0},
		{I: 2, J: 0, K: 0},
	}
	l, err := lattice.Build(cells)
	require.NoError(t, err)

	lib := piece.Library{
		"A": {{
			{DX: 0, DY: 0, DZ: 0},
			{DX: 1, DY: 1, DZ: 0},
			{DX: 1, DY: 0, DZ: 1},
			{DX: 0, DY: 1, DZ: 1},
		}},
	}
	fits := fit.Build(l, lib)

	tuning := search.DefaultTuning()
	tuning.Order = []string{"A"}
	s, err := search.New(l, fits, tuning)
	require.NoError(t, err)

	solved := runToCompletion(t, s)
	assert.False(t, solved)
	assert.Equal(t, 0, s.Cursor())
	assert.Empty(t, s.Placements())
}

func TestCursorNeverExceedsOrderLength(t *testing.T) {
	l, fits := buildTrivial(t)
	tuning := search.DefaultTuning()
	tuning.Order = []string{"A"}
	s, err := search.New(l, fits, tuning)
	require.NoError(t, err)

	// Step forward once, then keep stepping until it either solves or
	// exhausts; in all cases cursor must never exceed len(order).
	for i := 0; i < 1000; i++ {
		_, done := s.StepOnce()
		assert.LessOrEqual(t, s.Cursor(), s.TotalPieces())
		if done {
			break
		}
	}
}

func TestUnknownPieceRejected(t *testing.T) {
	l, fits := buildTrivial(t)
	tuning := search.DefaultTuning()
	tuning.Order = []string{"Z"}
	_, err := search.New(l, fits, tuning)
	assert.ErrorIs(t, err, search.ErrUnknownPiece)
}

func TestEmptyOrderRejected(t *testing.T) {
	l, fits := buildTrivial(t)
	tuning := search.DefaultTuning()
	_, err := search.New(l, fits, tuning)
	assert.ErrorIs(t, err, search.ErrInvalidConfiguration)
}

// TestDeterminism: the same seed, order, and flags must produce identical
// outcomes across repeated runs.
func TestDeterminism(t *testing.T) {
	l, fits := buildTrivial(t)
	run := func() (int, int64) {
		tuning := search.DefaultTuning()
		tuning.Order = []string{"A"}
		s, err := search.New(l, fits, tuning)
		require.NoError(t, err)
		runToCompletion(t, s)
		return s.PlacedCount(), s.Stats().Attempts
	}
	depth1, attempts1 := run()
	depth2, attempts2 := run()
	assert.Equal(t, depth1, depth2)
	assert.Equal(t, attempts1, attempts2)
}
