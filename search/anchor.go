package search

import (
	"github.com/ABakker30/ballpuzzle3/bitset"
	"github.com/ABakker30/ballpuzzle3/lattice"
)

// selectAnchor returns the unoccupied cell index with the fewest unoccupied
// neighbors, breaking ties by smaller index. It returns (-1, -1) if every
// cell is occupied.
func selectAnchor(l *lattice.Lattice, occ bitset.Set) (idx int, degree int) {
	best := -1
	bestDeg := int(^uint(0) >> 1) // max int
	n := l.Len()
	for i := 0; i < n; i++ {
		if occ.Test(i) {
			continue
		}
		d := unoccupiedDegree(l, occ, i)
		if d < bestDeg {
			best = i
			bestDeg = d
		}
	}
	if best < 0 {
		return -1, -1
	}
	return best, bestDeg
}

func unoccupiedDegree(l *lattice.Lattice, occ bitset.Set, idx int) int {
	d := 0
	for _, n := range l.Neighbors(idx) {
		if !occ.Test(int(n)) {
			d++
		}
	}
	return d
}

// isCorridor reports whether an anchor of the given degree forces a tight
// branch cap and disables roulette.
func isCorridor(degree int, deg2Corridor bool) bool {
	if degree == 1 {
		return true
	}
	return degree == 2 && deg2Corridor
}
