package driver

import "errors"

var (
	// ErrInvalidConfiguration is returned for malformed Options: an unknown
	// shuffle mode or a negative count.
	ErrInvalidConfiguration = errors.New("driver: invalid configuration")
)
