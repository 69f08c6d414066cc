package lattice

import "sort"

// Lattice is the canonical, immutable indexing of a container's cells plus
// their 12-neighbor FCC adjacency. It is built once per solver run and never
// mutated afterward; Neighbors and IsBoundary are pure lookups.
type Lattice struct {
	cells      []Cell
	index      map[Cell]int
	neighbors  [][]int32 // dense, cached at Build time
	isBoundary []bool
}

// Build constructs a Lattice from an unordered set of container cells.
// Cells are sorted into lexicographic order; cell index i corresponds to
// cells[i] for the lifetime of the returned Lattice.
//
// Build fails with ErrInvalidContainer when cells is empty or contains a
// duplicate.
func Build(cells []Cell) (*Lattice, error) {
	if len(cells) == 0 {
		return nil, ErrInvalidContainer
	}

	ordered := make([]Cell, len(cells))
	copy(ordered, cells)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Less(ordered[j]) })

	index := make(map[Cell]int, len(ordered))
	for i, c := range ordered {
		if _, dup := index[c]; dup {
			return nil, ErrInvalidContainer
		}
		index[c] = i
	}

	n := len(ordered)
	neighbors := make([][]int32, n)
	isBoundary := make([]bool, n)
	for i, c := range ordered {
		var lst []int32
		boundary := false
		for _, off := range neighborOffsets {
			nc := c.Add(off[0], off[1], off[2])
			if ni, ok := index[nc]; ok {
				lst = append(lst, int32(ni))
			} else {
				boundary = true
			}
		}
		neighbors[i] = lst
		isBoundary[i] = boundary
	}

	return &Lattice{
		cells:      ordered,
		index:      index,
		neighbors:  neighbors,
		isBoundary: isBoundary,
	}, nil
}

// Len returns the number of cells in the container (N).
func (l *Lattice) Len() int { return len(l.cells) }

// Cell returns the (i,j,k) triple at the given cell index.
func (l *Lattice) Cell(idx int) Cell { return l.cells[idx] }

// IndexOf returns the cell index for a given (i,j,k) triple, or (-1, false)
// if it is outside the container.
func (l *Lattice) IndexOf(c Cell) (int, bool) {
	idx, ok := l.index[c]
	if !ok {
		return -1, false
	}
	return idx, true
}

// Neighbors returns the indices of cells FCC-adjacent to idx and also inside
// the container. The returned slice must not be mutated by callers.
func (l *Lattice) Neighbors(idx int) []int32 { return l.neighbors[idx] }

// IsBoundary reports whether idx has at least one of the 12 FCC neighbor
// offsets that falls outside the container.
func (l *Lattice) IsBoundary(idx int) bool { return l.isBoundary[idx] }

// Cells returns the ordered cell slice backing this Lattice. The returned
// slice must not be mutated by callers.
func (l *Lattice) Cells() []Cell { return l.cells }
