package container

import (
	"encoding/json"

	"github.com/ABakker30/ballpuzzle3/lattice"
)

// jsonContainer mirrors the on-disk container document.
type jsonContainer struct {
	Lattice string                 `json:"lattice"`
	Version int                    `json:"version"`
	R       float64                `json:"r"`
	Meta    map[string]interface{} `json:"meta"`
	Cells   [][3]int               `json:"cells"`
}

// Load parses a container JSON document. It returns ErrInvalidContainer when
// the document does not parse or its cells array is missing or empty; cell
// deduplication and ordering are the Lattice's concern (lattice.Build), not
// this loader's.
func Load(data []byte) (Container, error) {
	var raw jsonContainer
	if err := json.Unmarshal(data, &raw); err != nil {
		return Container{}, ErrInvalidContainer
	}
	if len(raw.Cells) == 0 {
		return Container{}, ErrInvalidContainer
	}

	cells := make([]lattice.Cell, len(raw.Cells))
	for i, c := range raw.Cells {
		cells[i] = lattice.Cell{I: c[0], J: c[1], K: c[2]}
	}

	return Container{
		Lattice: raw.Lattice,
		Version: raw.Version,
		R:       raw.R,
		Meta:    raw.Meta,
		Cells:   cells,
	}, nil
}
