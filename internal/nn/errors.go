package nn

import "errors"

// Common errors.
var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
