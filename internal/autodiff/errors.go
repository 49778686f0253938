package autodiff

import "errors"

// Common errors.
var (
	// ErrInvalidOperandKind is returned when an exponent is not a plain number.
	ErrInvalidOperandKind = errors.New("invalid operand kind")

	// ErrUnrecognizedOperation marks an internal defect: a node whose
	// operation the backward pass does not know. It is only ever carried
	// by a panic.
	ErrUnrecognizedOperation = errors.New("unrecognized operation")
)
