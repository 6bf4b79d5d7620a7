package fuzzyset

import "errors"

var (
	// ErrInvalidDegrees signals that one or more membership degrees fell
	// outside the range [0, 1] during construction of a set. The wrapped
	// detail lists every offending element.
	ErrInvalidDegrees = errors.New("invalid membership degrees")

	// ErrInvalidRange signals a malformed continuous domain: start > end,
	// step <= 0 or a non-finite bound.
	ErrInvalidRange = errors.New("invalid domain range")

	// ErrDomainMismatch signals a norm or ordering operation between sets
	// whose domains are not equal.
	ErrDomainMismatch = errors.New("domain mismatch")

	// ErrTypeMismatch signals an operation between fuzzy sets of different
	// concrete variants.
	ErrTypeMismatch = errors.New("fuzzy set variant mismatch")

	// ErrInvalidAlpha signals an alpha-cut threshold outside the range [0, 1].
	ErrInvalidAlpha = errors.New("alpha must be between 0 and 1")
)
