package lattice

import "errors"

var (
	// ErrInvalidContainer is returned when the supplied cell set is empty or
	// contains a duplicate (i,j,k) triple.
	ErrInvalidContainer = errors.New("lattice: invalid container")
)
