package expand

import "errors"

// Sentinel errors for expansion operations. Validation happens fully
// before the first allocation or write; a returned error means nothing was
// mutated.
var (
	// ErrRepetitions indicates a malformed repetition vector: empty, a zero
	// entry, or a length not matching the unit cell's periodicity.
	ErrRepetitions = errors.New("expand: malformed repetition vector")

	// ErrDimension indicates the unit cell's periodicity is not supported
	// by the requested operation.
	ErrDimension = errors.New("expand: not implemented for this dimension")

	// ErrOriginIndex indicates the growth origin is not a valid basis site.
	ErrOriginIndex = errors.New("expand: origin site index out of range")

	// ErrBondDistance indicates a negative bond-distance bound.
	ErrBondDistance = errors.New("expand: bond distance must be non-negative")

	// ErrNilShape indicates GrowShape was called without a predicate.
	ErrNilShape = errors.New("expand: shape predicate is nil")
)
