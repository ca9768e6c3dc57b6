package linkedcontent

import "errors"

var (
	// ErrUnknownDriver reports a switch to a value outside the configured
	// driver enumeration. The content swap still clears the previous fragment
	// and updates visibility before the error is returned.
	ErrUnknownDriver = errors.New("linkedcontent: unknown driver value")

	// ErrMissingTemplate reports that template capture could not resolve a
	// fragment for one or more configured drivers. Construction fails fast
	// rather than deferring to an undefined swap at event time.
	ErrMissingTemplate = errors.New("linkedcontent: missing template")
)
