// Package piece holds the piece library: a fixed set of four-cell shapes,
// each given as an ordered list of rotational orientations.
//
// Two JSON input shapes are accepted: a plain
// {piece_id: [orientation, ...]} map, or a {piece_id__variant: orientation}
// grouped form. Both collapse to the same internal representation — a
// mapping from piece id to an ordered list of Orientation — normalized once
// at load time so the rest of the module never has to care which shape the
// file came in as.
package piece
