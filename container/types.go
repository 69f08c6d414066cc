package container

import "github.com/ABakker30/ballpuzzle3/lattice"

// Container is the parsed form of a container JSON document: the cell set
// plus the fields the rendering/solution layer needs (sphere radius,
// free-form metadata). lattice, version, and meta are informational and do
// not affect the search.
type Container struct {
	Lattice string
	Version int
	R       float64
	Meta    map[string]interface{}
	Cells   []lattice.Cell
}
