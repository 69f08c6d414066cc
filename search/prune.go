package search

import (
	"github.com/ABakker30/ballpuzzle3/bitset"
	"github.com/ABakker30/ballpuzzle3/lattice"
)

// wouldIsolate reports whether occAfter leaves a "dead" empty cell: a cell
// that is unoccupied and, among touched (newly-filled cells and their
// neighbors), has zero unoccupied neighbors. The scan covers the whole
// touched set, not only the frontier.
func wouldIsolate(l *lattice.Lattice, occAfter bitset.Set, touched [4]int32) bool {
	seen := make(map[int32]struct{}, 16)
	for _, t := range touched {
		seen[t] = struct{}{}
		for _, n := range l.Neighbors(int(t)) {
			seen[n] = struct{}{}
		}
	}
	for x := range seen {
		if occAfter.Test(int(x)) {
			continue
		}
		hasEmptyNeighbor := false
		for _, n := range l.Neighbors(int(x)) {
			if !occAfter.Test(int(n)) {
				hasEmptyNeighbor = true
				break
			}
		}
		if !hasEmptyNeighbor {
			return true
		}
	}
	return false
}

// emptiesMod4OK flood-fills every connected component of unoccupied cells
// and rejects occAfter if any component's size is not a multiple of 4.
func emptiesMod4OK(l *lattice.Lattice, occAfter bitset.Set) bool {
	n := l.Len()
	seen := make([]bool, n)
	var stack []int32

	for i := 0; i < n; i++ {
		if occAfter.Test(i) || seen[i] {
			continue
		}
		stack = append(stack[:0], int32(i))
		seen[i] = true
		size := 0
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			for _, v := range l.Neighbors(int(u)) {
				if !occAfter.Test(int(v)) && !seen[v] {
					seen[v] = true
					stack = append(stack, v)
				}
			}
		}
		if size%4 != 0 {
			return false
		}
	}
	return true
}

// exposureCounts returns, for the cells newly filled by newlyFilled: the
// count of distinct unoccupied neighbors (exposure), and the subset of
// those on the container boundary (boundary exposure).
func exposureCounts(l *lattice.Lattice, occAfter bitset.Set, newlyFilled [4]int32) (exposure, boundaryExposure int) {
	seen := make(map[int32]struct{}, 16)
	for _, u := range newlyFilled {
		for _, v := range l.Neighbors(int(u)) {
			if occAfter.Test(int(v)) {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			exposure++
			if l.IsBoundary(int(v)) {
				boundaryExposure++
			}
		}
	}
	return exposure, boundaryExposure
}

// leafEmpties counts, among the unoccupied neighbors of newlyFilled, how
// many themselves have exactly one unoccupied neighbor.
func leafEmpties(l *lattice.Lattice, occAfter bitset.Set, newlyFilled [4]int32) int {
	cand := make(map[int32]struct{}, 16)
	for _, u := range newlyFilled {
		for _, v := range l.Neighbors(int(u)) {
			if !occAfter.Test(int(v)) {
				cand[v] = struct{}{}
			}
		}
	}
	leafs := 0
	for v := range cand {
		emptyNeighbors := 0
		for _, w := range l.Neighbors(int(v)) {
			if !occAfter.Test(int(w)) {
				emptyNeighbors++
				if emptyNeighbors >= 2 {
					break
				}
			}
		}
		if emptyNeighbors == 1 {
			leafs++
		}
	}
	return leafs
}
