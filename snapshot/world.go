package snapshot

import (
	"encoding/json"
	"math"
)

// PiecePlacement is the minimal per-placement shape the world renderers
// need: a piece id and the container cells it covers, in placement order.
type PiecePlacement struct {
	ID       string
	CellsIJK [][3]int
}

// frame is the fixed "square" presentation frame: identity rotation, zero
// translation. The driver never varies this; display-time rotation and
// translation belong to the viewer.
type frame struct {
	R [3][3]float64 `json:"R"`
	T [3]float64    `json:"t"`
}

type presentation struct {
	Mode  string `json:"mode"`
	Frame frame  `json:"frame"`
}

// pieceDoc is one entry of WorldDoc.Pieces.
type pieceDoc struct {
	ID           string      `json:"id"`
	CellsIJK     [][3]int    `json:"cells_ijk"`
	WorldCenters [][3]float64 `json:"world_centers"`
}

// WorldDoc is the on-disk world document ("tetra_spheres_solution/1.0").
type WorldDoc struct {
	Schema          string       `json:"schema"`
	ContainerName   string       `json:"container_name"`
	ContainerPath   string       `json:"container_path"`
	R               float64      `json:"r"`
	Presentation    presentation `json:"presentation"`
	PiecesOrder     []string     `json:"pieces_order"`
	Pieces          []pieceDoc   `json:"pieces"`
	Depth           int          `json:"depth"`
	Timestamp       float64      `json:"timestamp"`
	ContainerCID    string       `json:"container_cid_sha256"`
	SIDState        string       `json:"sid_state_sha256"`
	SIDRoute        string       `json:"sid_route_sha256"`
}

// ijkToWorld maps a container cell to its render-space center using the
// convention shared with the text renderer: u=j+k, v=i+k, w=i+j, scaled
// by r*sqrt(2).
func ijkToWorld(i, j, k int, r float64) [3]float64 {
	d := r * math.Sqrt2
	u := float64(j + k)
	v := float64(i + k)
	w := float64(i + j)
	return [3]float64{u * d, v * d, w * d}
}

// BuildWorldDoc assembles a WorldDoc from a completed or in-progress
// attempt's placements.
func BuildWorldDoc(containerName, containerPath string, r float64, order []string, placements []PiecePlacement, depth int, cid, sidState, sidRoute string, timestamp float64) WorldDoc {
	pieces := make([]pieceDoc, len(placements))
	for i, p := range placements {
		centers := make([][3]float64, len(p.CellsIJK))
		for j, c := range p.CellsIJK {
			centers[j] = ijkToWorld(c[0], c[1], c[2], r)
		}
		pieces[i] = pieceDoc{ID: p.ID, CellsIJK: p.CellsIJK, WorldCenters: centers}
	}

	return WorldDoc{
		Schema:        "tetra_spheres_solution/1.0",
		ContainerName: containerName,
		ContainerPath: containerPath,
		R:             r,
		Presentation: presentation{
			Mode: "square",
			Frame: frame{
				R: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
				T: [3]float64{0, 0, 0},
			},
		},
		PiecesOrder:  order,
		Pieces:       pieces,
		Depth:        depth,
		Timestamp:    timestamp,
		ContainerCID: cid,
		SIDState:     sidState,
		SIDRoute:     sidRoute,
	}
}

// WriteWorldJSON atomically writes doc as indented JSON to path.
func WriteWorldJSON(path string, doc WorldDoc) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return atomicWrite(path, data)
}
