// SPDX-License-Identifier: MIT
// Package: lvlattice/unitcells
//
// impl_triangular.go — the 2D triangular cell.
//
// Contract:
//   • 1 site at the origin, vectors (1,0) and (1/2, √3/2).
//   • Bonds: 1→1 at wraps ±(1,0), ±(0,1), ±(1,-1) — coordination 6.
//
// Complexity: O(1).

package unitcells

import (
	"math"

	"github.com/katalvlaran/lvlattice/lattice"
)

// Triangular returns the one-site triangular cell with hopping s to each
// of the six nearest neighbors.
func Triangular(s lattice.Strength) *lattice.Unitcell {
	uc := lattice.NewUnitcell(
		[][]float64{{1, 0}, {0.5, math.Sqrt(3) / 2}},
		[][]float64{{0, 0}},
		nil,
	)
	lattice.AddBond(uc, 1, 1, s, lattice.WithWrap(1, 0))
	lattice.AddBond(uc, 1, 1, s, lattice.WithWrap(0, 1))
	lattice.AddBond(uc, 1, 1, s, lattice.WithWrap(1, -1))

	return uc
}
