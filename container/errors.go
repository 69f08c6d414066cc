package container

import "errors"

var (
	// ErrInvalidContainer is returned when a container document is
	// unparseable, or its cells field is missing or empty.
	ErrInvalidContainer = errors.New("container: invalid container")
)
