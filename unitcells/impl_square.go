// SPDX-License-Identifier: MIT
// Package: lvlattice/unitcells
//
// impl_square.go — the 2D square cell.
//
// Contract:
//   • 1 site at the origin, lattice vectors (1,0) and (0,1).
//   • Bonds: 1→1 at wraps ±(1,0) and ±(0,1) — coordination number 4.
//
// Complexity: O(1).

package unitcells

import "github.com/katalvlaran/lvlattice/lattice"

// Square returns the one-site square cell with hopping s to each of the
// four nearest neighbors.
func Square(s lattice.Strength) *lattice.Unitcell {
	uc := lattice.NewUnitcell(
		[][]float64{{1, 0}, {0, 1}},
		[][]float64{{0, 0}},
		nil,
	)
	lattice.AddBond(uc, 1, 1, s, lattice.WithWrap(1, 0))
	lattice.AddBond(uc, 1, 1, s, lattice.WithWrap(0, 1))

	return uc
}
