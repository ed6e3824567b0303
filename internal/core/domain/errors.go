package domain

import "errors"

// Domain errors represent conversion failures.
// These are distinct from infrastructure errors such as a missing file.
var (
	// ErrParseFailure indicates the renderer could not process the input.
	// It is the only failure kind a conversion can produce; renderers wrap
	// it with the concrete reason.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidInput indicates malformed or invalid input outside of the
	// HTML itself, e.g. a negative width in the config file.
	ErrInvalidInput = errors.New("invalid input")
)
