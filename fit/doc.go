// Package fit precomputes, for every (piece id, anchor cell) pair, the list
// of orientations that fit entirely inside the container.
//
// A Table is built once from a Lattice and a piece.Library and is immutable
// afterward — exactly like the Lattice itself. Anchors with no legal fit for
// a given piece hold no fits: FitsAt returns an empty list for them.
package fit
