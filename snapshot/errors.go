package snapshot

import "errors"

var (
	// ErrIOFatal wraps a snapshot/progress write that kept failing after the
	// retry window elapsed. It is logged by the caller, never treated as
	// fatal to the search itself.
	ErrIOFatal = errors.New("snapshot: write failed after retry")
)
