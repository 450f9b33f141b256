// SPDX-License-Identifier: MIT

package bloch

import "errors"

// Sentinel errors for matrix assembly. Branch with errors.Is; call sites
// attach context via %w wrapping.
var (
	// ErrSymbolicStrength indicates a bond strength that has no numeric
	// value (a symbolic label that does not parse to a number).
	ErrSymbolicStrength = errors.New("bloch: symbolic strength has no numeric value")

	// ErrBondIndex indicates a bond referencing a site outside [1, N].
	ErrBondIndex = errors.New("bloch: bond site index out of range")

	// ErrDimensionMismatch indicates a k-vector whose length differs from
	// the container's spatial dimension.
	ErrDimensionMismatch = errors.New("bloch: k-vector dimension mismatch")

	// ErrIndexOutOfBounds indicates a Dense access outside the matrix.
	ErrIndexOutOfBounds = errors.New("bloch: matrix index out of bounds")
)
