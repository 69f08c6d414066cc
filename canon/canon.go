package canon

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/ABakker30/ballpuzzle3/lattice"
)

// Transform is the rotation and translation that carries a container's raw
// cell set onto its canonical form.
type Transform struct {
	rot rotation
	tI  int
	tJ  int
	tK  int
}

// Apply carries a raw cell through the transform: rotate, then translate.
func (tf Transform) Apply(c lattice.Cell) lattice.Cell {
	r := tf.rot.apply(c)
	return lattice.Cell{I: r.I + tf.tI, J: r.J + tf.tJ, K: r.K + tf.tK}
}

// Canonicalize finds the rotation+translation that yields the
// lexicographically smallest serialized cell listing among the 24 proper
// cubic rotations. It returns the winning Transform, the
// canonical serialization, and its SHA-256 hex digest (container_cid).
func Canonicalize(cells []lattice.Cell) (Transform, string, string) {
	var best Transform
	var bestSerial string
	haveBest := false

	for _, r := range rotations {
		rotated := make([]lattice.Cell, len(cells))
		for i, c := range cells {
			rotated[i] = r.apply(c)
		}

		minI, minJ, minK := rotated[0].I, rotated[0].J, rotated[0].K
		for _, c := range rotated[1:] {
			if c.I < minI {
				minI = c.I
			}
			if c.J < minJ {
				minJ = c.J
			}
			if c.K < minK {
				minK = c.K
			}
		}

		translated := make([]lattice.Cell, len(rotated))
		for i, c := range rotated {
			translated[i] = lattice.Cell{I: c.I - minI, J: c.J - minJ, K: c.K - minK}
		}
		sort.Slice(translated, func(i, j int) bool { return translated[i].Less(translated[j]) })

		serial := serializeCells(translated)
		if !haveBest || serial < bestSerial {
			haveBest = true
			bestSerial = serial
			best = Transform{rot: r, tI: -minI, tJ: -minJ, tK: -minK}
		}
	}

	return best, bestSerial, sha256Hex(bestSerial)
}

// serializeCells renders an already-sorted cell slice as
// "i,j,k;i,j,k;...".
func serializeCells(cells []lattice.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprintf("%d,%d,%d", c.I, c.J, c.K)
	}
	return strings.Join(parts, ";")
}

func sha256Hex(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}
