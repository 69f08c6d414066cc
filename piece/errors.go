package piece

import "errors"

var (
	// ErrInvalidPieceLibrary is returned when the input JSON matches neither
	// accepted piece-library format.
	ErrInvalidPieceLibrary = errors.New("piece: invalid piece library")
)
