package canon

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ABakker30/ballpuzzle3/lattice"
)

// PiecePlacement is the minimal shape canon needs from a solved search
// attempt: a piece id and the cells it covers, in the order the driver
// placed them.
type PiecePlacement struct {
	PieceID string
	Cells   []lattice.Cell
}

// cellsString renders a piece's cells as a sorted, comma-joined "i:j:k"
// list — order-agnostic by construction.
func cellsString(cells []lattice.Cell) string {
	sorted := make([]lattice.Cell, len(cells))
	copy(sorted, cells)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	parts := make([]string, len(sorted))
	for i, c := range sorted {
		parts[i] = fmt.Sprintf("%d:%d:%d", c.I, c.J, c.K)
	}
	return strings.Join(parts, ",")
}

// StateSID hashes "<cid>|A=<cells>|B=<cells>|..." with piece ids sorted
// ascending — order-agnostic: two solutions covering the same cells with
// the same pieces hash identically regardless of placement order.
func StateSID(cid string, placements []PiecePlacement) string {
	sorted := make([]PiecePlacement, len(placements))
	copy(sorted, placements)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PieceID < sorted[j].PieceID })

	var b strings.Builder
	b.WriteString(cid)
	for _, p := range sorted {
		b.WriteByte('|')
		b.WriteString(p.PieceID)
		b.WriteByte('=')
		b.WriteString(cellsString(p.Cells))
	}
	return sha256Hex(b.String())
}

// RouteSID hashes "<cid>|A=<cells>-> B=<cells>-> ..." in the exact order
// pieces were placed — order-aware: identical coverage placed in a
// different sequence hashes differently.
func RouteSID(cid string, placements []PiecePlacement) string {
	var b strings.Builder
	b.WriteString(cid)
	b.WriteByte('|')
	for i, p := range placements {
		if i > 0 {
			b.WriteString("-> ")
		}
		b.WriteString(p.PieceID)
		b.WriteByte('=')
		b.WriteString(cellsString(p.Cells))
	}
	return sha256Hex(b.String())
}
