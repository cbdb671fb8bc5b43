package dissolve

import "errors"

// Domain errors for transition construction and stepping.
var (
	// ErrInvalidConfig indicates a non-positive duration or dimension,
	// or a missing swapper, at construction.
	ErrInvalidConfig = errors.New("dissolve: invalid configuration")

	// ErrNegativeDelta indicates Update was called with a negative
	// time delta.
	ErrNegativeDelta = errors.New("dissolve: negative time delta")
)
