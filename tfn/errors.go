package tfn

import "errors"

var (
	// ErrInvalidBounds signals a triple that is not strictly ordered
	// left < peak < right.
	ErrInvalidBounds = errors.New("invalid triangular bounds")

	// ErrInvalidOperand signals a non-finite scalar (NaN or infinity) where
	// a real number was required.
	ErrInvalidOperand = errors.New("operand is not a finite number")

	// ErrInvalidTriple signals a slice that does not hold exactly three
	// values.
	ErrInvalidTriple = errors.New("expected exactly three values")

	// ErrInvalidAlpha signals an alpha-cut threshold outside the range
	// [0, 1].
	ErrInvalidAlpha = errors.New("alpha must be between 0 and 1")
)
