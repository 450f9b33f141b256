// SPDX-License-Identifier: MIT
// Package: lvlattice/unitcells
//
// impl_honeycomb.go — the 2D honeycomb cell.
//
// Contract:
//   • 2 sites per cell: A at the origin, B at (√3/2, 1/2).
//   • Vectors a1 = (√3, 0), a2 = (√3/2, 3/2); nearest-neighbor
//     distance 1.
//   • Bonds: 1→2 at wraps (0,0), (-1,0), (0,-1) plus reverses —
//     coordination 3 per site.
//
// Complexity: O(1).

package unitcells

import (
	"math"

	"github.com/katalvlaran/lvlattice/lattice"
)

// Honeycomb returns the two-site honeycomb cell with hopping s along
// each of the three A-B arms.
func Honeycomb(s lattice.Strength) *lattice.Unitcell {
	sqrt3 := math.Sqrt(3)
	uc := lattice.NewUnitcell(
		[][]float64{{sqrt3, 0}, {sqrt3 / 2, 1.5}},
		[][]float64{{0, 0}, {sqrt3 / 2, 0.5}},
		nil,
	)
	lattice.AddBond(uc, 1, 2, s)
	lattice.AddBond(uc, 1, 2, s, lattice.WithWrap(-1, 0))
	lattice.AddBond(uc, 1, 2, s, lattice.WithWrap(0, -1))

	return uc
}
