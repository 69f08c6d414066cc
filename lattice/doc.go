// Package lattice indexes the container cells of a face-centered cubic (FCC)
// integer lattice and precomputes their 12-neighbor adjacency.
//
// A Lattice is built once per solver run from the set of (i, j, k) cells that
// make up the container, and is immutable afterward: cell-to-index assignment,
// neighbor lists, and boundary flags never change once Build returns.
//
// Cell ordering is the sole source of truth for bitmask bit positions
// throughout the rest of the module (fit, search, canon): cell index 0 is
// always the lexicographically smallest (i,j,k) triple in the container.
package lattice
