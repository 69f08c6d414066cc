package canon

import "github.com/ABakker30/ballpuzzle3/lattice"

// rotation is a proper (determinant +1) cubic rotation expressed as an axis
// permutation plus a per-output-axis sign: Apply(c)[p] = sign[p] * c[perm[p]].
type rotation struct {
	perm [3]int
	sign [3]int
}

// apply transforms a cell by this rotation.
func (r rotation) apply(c lattice.Cell) lattice.Cell {
	v := [3]int{c.I, c.J, c.K}
	var out [3]int
	for p := 0; p < 3; p++ {
		out[p] = r.sign[p] * v[r.perm[p]]
	}
	return lattice.Cell{I: out[0], J: out[1], K: out[2]}
}

// permutationParity returns +1 for an even permutation of (0,1,2), -1 for
// odd, via inversion counting.
func permutationParity(perm [3]int) int {
	inversions := 0
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}
	if inversions%2 == 0 {
		return 1
	}
	return -1
}

// rotations is the fixed set of all 24 proper cubic rotations: every
// permutation of the three axes paired with every sign triple whose
// combined determinant (permutation parity times the product of signs)
// equals +1.
var rotations = buildRotations()

func buildRotations() []rotation {
	perms := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2},
		{1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	signs := [][3]int{
		{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
		{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1},
	}

	var out []rotation
	for _, p := range perms {
		parity := permutationParity(p)
		for _, s := range signs {
			det := parity * s[0] * s[1] * s[2]
			if det == 1 {
				out = append(out, rotation{perm: p, sign: s})
			}
		}
	}
	return out
}
