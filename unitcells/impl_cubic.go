// SPDX-License-Identifier: MIT
// Package: lvlattice/unitcells
//
// impl_cubic.go — the 3D simple-cubic cell.
//
// Contract:
//   • 1 site at the origin, orthonormal vectors (1,0,0), (0,1,0),
//     (0,0,1).
//   • Bonds: 1→1 at wraps ±(1,0,0), ±(0,1,0), ±(0,0,1) —
//     coordination 6.
//
// Complexity: O(1).

package unitcells

import "github.com/katalvlaran/lvlattice/lattice"

// SimpleCubic returns the one-site cubic cell with hopping s to each of
// the six nearest neighbors.
func SimpleCubic(s lattice.Strength) *lattice.Unitcell {
	uc := lattice.NewUnitcell(
		[][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		[][]float64{{0, 0, 0}},
		nil,
	)
	lattice.AddBond(uc, 1, 1, s, lattice.WithWrap(1, 0, 0))
	lattice.AddBond(uc, 1, 1, s, lattice.WithWrap(0, 1, 0))
	lattice.AddBond(uc, 1, 1, s, lattice.WithWrap(0, 0, 1))

	return uc
}
