package snapshot

import (
	"fmt"
	"strings"
)

// WriteWorldLayers renders the layered ASCII grid view of a set of
// placements and writes it atomically to path. header supplies the
// metadata lines printed above the grid (timestamp, container_cid_sha256,
// sid_state_sha256, sid_route_sha256); headerOrder controls the order they
// are printed in, since map iteration order is not stable.
//
// Columns are printed umax..umin and rows vmax..vmin; downstream viewers
// rely on this mirroring.
func WriteWorldLayers(path string, placements []PiecePlacement, headerOrder []string, header map[string]string) error {
	occ := make(map[[3]int]string)
	for _, p := range placements {
		for _, c := range p.CellsIJK {
			occ[c] = p.ID
		}
	}

	if len(occ) == 0 {
		return atomicWrite(path, []byte("[empty]\n"))
	}

	umin, umax, vmin, vmax, wmin, wmax := boundsUVW(occ)

	var b strings.Builder
	for _, k := range headerOrder {
		fmt.Fprintf(&b, "%s: %s\n", k, header[k])
	}
	b.WriteString("\n")
	b.WriteString("[SOLUTION — world view (ALL layers)]\n")
	fmt.Fprintf(&b, "Legend: rows=v (i+k: %d..%d), cols=u (j+k: %d..%d), layers=w (i+j: %d..%d)\n", vmin, vmax, umin, umax, wmin, wmax)
	b.WriteString("\n")

	for w := wmin; w <= wmax; w++ {
		fmt.Fprintf(&b, "Layer w=i+j=%d:\n\n", w)
		for v := vmax; v >= vmin; v-- {
			var row strings.Builder
			for u := umax; u >= umin; u-- {
				i2 := v + w - u
				j2 := u + w - v
				k2 := u + v - w
				if (i2|j2|k2)&1 != 0 {
					row.WriteString("  ")
					continue
				}
				i, j, k := i2/2, j2/2, k2/2
				pid, ok := occ[[3]int{i, j, k}]
				if !ok {
					row.WriteString("  ")
					continue
				}
				row.WriteByte(pid[0])
				row.WriteByte(' ')
			}
			b.WriteString(strings.TrimRight(row.String(), " "))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return atomicWrite(path, []byte(strings.TrimRight(b.String(), "\n")+"\n"))
}

func boundsUVW(occ map[[3]int]string) (umin, umax, vmin, vmax, wmin, wmax int) {
	first := true
	for c := range occ {
		i, j, k := c[0], c[1], c[2]
		u, v, w := j+k, i+k, i+j
		if first {
			umin, umax, vmin, vmax, wmin, wmax = u, u, v, v, w, w
			first = false
			continue
		}
		if u < umin {
			umin = u
		}
		if u > umax {
			umax = u
		}
		if v < vmin {
			vmin = v
		}
		if v > vmax {
			vmax = v
		}
		if w < wmin {
			wmin = w
		}
		if w > wmax {
			wmax = w
		}
	}
	return
}
