// SPDX-License-Identifier: MIT
// Package: lvlattice/unitcells
//
// impl_diamond.go — the 3D diamond cell.
//
// Contract:
//   • 2 sites on an fcc frame: A at the origin, B at (1/4,1/4,1/4);
//     vectors (0,1/2,1/2), (1/2,0,1/2), (1/2,1/2,0).
//   • Bonds: 1→2 at wraps (0,0,0), (-1,0,0), (0,-1,0), (0,0,-1) plus
//     reverses — the four tetrahedral arms, coordination 4.
//
// Complexity: O(1).

package unitcells

import "github.com/katalvlaran/lvlattice/lattice"

// Diamond returns the two-site diamond cell with hopping s along each
// tetrahedral A-B arm.
func Diamond(s lattice.Strength) *lattice.Unitcell {
	uc := lattice.NewUnitcell(
		[][]float64{{0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0}},
		[][]float64{{0, 0, 0}, {0.25, 0.25, 0.25}},
		nil,
	)
	lattice.AddBond(uc, 1, 2, s)
	lattice.AddBond(uc, 1, 2, s, lattice.WithWrap(-1, 0, 0))
	lattice.AddBond(uc, 1, 2, s, lattice.WithWrap(0, -1, 0))
	lattice.AddBond(uc, 1, 2, s, lattice.WithWrap(0, 0, -1))

	return uc
}
