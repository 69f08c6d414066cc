package driver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ABakker30/ballpuzzle3/search"
)

// solutionSignature renders a dedup key for a completed attempt: a sorted
// list of (piece_id, sorted covered_indices). This is
// distinct from canon.StateSID — it is cheap, index-based, and computed
// before any canonicalization, purely to detect whether this attempt found
// a tiling already seen in this run.
func solutionSignature(placements []search.Placement) string {
	type entry struct {
		pieceID string
		covered [4]int32
	}
	entries := make([]entry, len(placements))
	for i, p := range placements {
		c := p.Covered
		sort.Slice(c[:], func(a, b int) bool { return c[a] < c[b] })
		entries[i] = entry{pieceID: p.PieceID, covered: c}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].pieceID < entries[j].pieceID })

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s:%d,%d,%d,%d", e.pieceID, e.covered[0], e.covered[1], e.covered[2], e.covered[3])
	}
	return strings.Join(parts, "|")
}
