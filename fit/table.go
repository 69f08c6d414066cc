package fit

import (
	"github.com/ABakker30/ballpuzzle3/bitset"
	"github.com/ABakker30/ballpuzzle3/lattice"
	"github.com/ABakker30/ballpuzzle3/piece"
)

// Fit is one legal placement of a single orientation of a single piece at a
// single anchor cell: every offset of the orientation lands on a container
// cell, recorded both as a bitmask and as the explicit covered cell indices.
//
// Invariant: Covered always includes the anchor's own cell index, and Mask
// has exactly four bits set.
type Fit struct {
	OrientationIdx int
	Mask           bitset.Set
	Covered        [4]int32
}

// Table is the precomputed per-(piece, anchor) fit list. Orientations are
// consumed verbatim from the piece library; Table never generates rotations
// of its own.
type Table struct {
	n        int
	byPiece  map[string][][]Fit // byPiece[pieceID][anchorIdx] = fits at that anchor
	hasPiece map[string]bool
}

// Build precomputes the fit table for every piece in lib against l.
func Build(l *lattice.Lattice, lib piece.Library) *Table {
	n := l.Len()
	t := &Table{
		n:        n,
		byPiece:  make(map[string][][]Fit, len(lib)),
		hasPiece: make(map[string]bool, len(lib)),
	}

	for id, orientations := range lib {
		t.hasPiece[id] = true
		perAnchor := make([][]Fit, n)
		for anchorIdx := 0; anchorIdx < n; anchorIdx++ {
			anchor := l.Cell(anchorIdx)
			var fits []Fit
			for oriIdx, ori := range orientations {
				var covered [4]int32
				ok := true
				for ci, off := range ori {
					cell := anchor.Add(off.DX, off.DY, off.DZ)
					idx, found := l.IndexOf(cell)
					if !found {
						ok = false
						break
					}
					covered[ci] = int32(idx)
				}
				if !ok {
					continue
				}
				mask := bitset.NewSet(n)
				for _, ci := range covered {
					mask.Set(int(ci))
				}
				fits = append(fits, Fit{OrientationIdx: oriIdx, Mask: mask, Covered: covered})
			}
			perAnchor[anchorIdx] = fits
		}
		t.byPiece[id] = perAnchor
	}

	return t
}

// N returns the lattice size this table was built against.
func (t *Table) N() int { return t.n }

// HasPiece reports whether the given piece id is present in the table.
func (t *Table) HasPiece(id string) bool { return t.hasPiece[id] }

// FitsAt returns the fits for the given piece at the given anchor cell
// index. The returned slice must not be mutated by callers.
func (t *Table) FitsAt(pieceID string, anchorIdx int) []Fit {
	perAnchor := t.byPiece[pieceID]
	if perAnchor == nil || anchorIdx < 0 || anchorIdx >= len(perAnchor) {
		return nil
	}
	return perAnchor[anchorIdx]
}
