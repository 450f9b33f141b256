// SPDX-License-Identifier: MIT
// Package: lvlattice/unitcells
//
// impl_chain.go — the 1D chain cell.
//
// Contract:
//   • 1 site at the origin, lattice vector (1).
//   • Bonds: 1→1 at wrap +1 and its reverse at wrap -1.
//
// Complexity: O(1).

package unitcells

import "github.com/katalvlaran/lvlattice/lattice"

// Chain returns the one-site chain cell with hopping s to each neighbor.
func Chain(s lattice.Strength) *lattice.Unitcell {
	uc := lattice.NewUnitcell(
		[][]float64{{1}},
		[][]float64{{0}},
		nil,
	)
	lattice.AddBond(uc, 1, 1, s, lattice.WithWrap(1))

	return uc
}
