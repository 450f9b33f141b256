// SPDX-License-Identifier: MIT

// Package bloch assembles interaction matrices from a container's bond
// list: the real-space coupling matrix and the Bloch (k-space) matrix
// consumed by band-structure code.
//
// What:
//
//   - Dense: a minimal square complex128 matrix with accumulation,
//     cloning, and hermitization.
//   - RealSpace: N×N accumulation M[from,to] += strength over all bonds;
//     parallel bonds sum by construction.
//   - Bloch: the same accumulation with each bond weighted by
//     exp(-i·k·Δr), Δr the geometric displacement including the wrap's
//     lattice-vector translation. At k = 0 it equals RealSpace exactly.
//
// Numeric policy:
//
//   - Matrices are complex-valued regardless of the input strength kind;
//     numeric strengths are coerced to complex.
//   - A symbolic strength participates only if its label parses cleanly
//     to a number; otherwise assembly fails with ErrSymbolicStrength.
//     Remap or evaluate strengths (lattice.MapStrengths) first.
//
// Errors:
//
//   - ErrSymbolicStrength: a bond strength has no numeric value.
//   - ErrBondIndex: a bond references a site outside [1, N]; bond lists
//     are not validated at construction time, so this is where a bad
//     reference surfaces.
//   - ErrDimensionMismatch: len(k) differs from the spatial dimension.
//   - ErrIndexOutOfBounds: Dense.At/Set outside the matrix.
package bloch
