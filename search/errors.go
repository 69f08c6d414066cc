package search

import "errors"

var (
	// ErrUnknownPiece is returned when Tuning.Order references a piece id
	// absent from the fit.Table the State was built against.
	ErrUnknownPiece = errors.New("search: unknown piece id in order")

	// ErrInvalidConfiguration is returned for malformed Tuning values, such
	// as a negative branch cap or an unrecognized roulette mode.
	ErrInvalidConfiguration = errors.New("search: invalid configuration")
)
