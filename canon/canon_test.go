package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ABakker30/ballpuzzle3/canon"
	"github.com/ABakker30/ballpuzzle3/lattice"
)

func trivialCells() []lattice.Cell {
	return []lattice.Cell{
		{I: 0, J: 0, K: 0},
		{I: 1, J: 1, K: 0},
		{I: 1, J: 0, K: 1},
		{I: 0, J: 1, K: 1},
	}
}

func TestCanonicalizeDeterministic(t *testing.T) {
	cells := trivialCells()
	_, serial1, cid1 := canon.Canonicalize(cells)
	_, serial2, cid2 := canon.Canonicalize(cells)
	assert.Equal(t, serial1, serial2)
	assert.Equal(t, cid1, cid2)
	assert.Len(t, cid1, 64)
}

func TestCanonicalizeIdempotent(t *testing.T) {
	cells := trivialCells()
	tf, serial1, _ := canon.Canonicalize(cells)

	transformed := make([]lattice.Cell, len(cells))
	for i, c := range cells {
		transformed[i] = tf.Apply(c)
	}
	_, serial2, _ := canon.Canonicalize(transformed)
	assert.Equal(t, serial1, serial2)
}

func TestCanonicalizeRotationInvariant(t *testing.T) {
	cells := trivialCells()
	_, _, cid1 := canon.Canonicalize(cells)

	// A proper rotation (swap two axes and negate the third) of the same
	// shape must canonicalize to the same CID.
	rotated := make([]lattice.Cell, len(cells))
	for i, c := range cells {
		rotated[i] = lattice.Cell{I: c.J, J: c.I, K: -c.K}
	}
	_, _, cid2 := canon.Canonicalize(rotated)
	assert.Equal(t, cid1, cid2)
}

func TestStateSIDOrderAgnostic(t *testing.T) {
	_, _, cid := canon.Canonicalize(trivialCells())

	a := []canon.PiecePlacement{
		{PieceID: "A", Cells: []lattice.Cell{{I: 0, J: 0, K: 0}}},
		{PieceID: "B", Cells: []lattice.Cell{{I: 1, J: 1, K: 0}}},
	}
	b := []canon.PiecePlacement{
		{PieceID: "B", Cells: []lattice.Cell{{I: 1, J: 1, K: 0}}},
		{PieceID: "A", Cells: []lattice.Cell{{I: 0, J: 0, K: 0}}},
	}
	require.Equal(t, canon.StateSID(cid, a), canon.StateSID(cid, b))
}

func TestRouteSIDOrderAware(t *testing.T) {
	_, _, cid := canon.Canonicalize(trivialCells())

	a := []canon.PiecePlacement{
		{PieceID: "A", Cells: []lattice.Cell{{I: 0, J: 0, K: 0}}},
		{PieceID: "B", Cells: []lattice.Cell{{I: 1, J: 1, K: 0}}},
	}
	b := []canon.PiecePlacement{
		{PieceID: "B", Cells: []lattice.Cell{{I: 1, J: 1, K: 0}}},
		{PieceID: "A", Cells: []lattice.Cell{{I: 0, J: 0, K: 0}}},
	}
	assert.NotEqual(t, canon.RouteSID(cid, a), canon.RouteSID(cid, b))
}
