// SPDX-License-Identifier: MIT
// Package: lvlattice/unitcells
//
// impl_kagome.go — the 2D kagome cell.
//
// Contract:
//   • 3 sites per cell: (0,0), (1,0), (1/2, √3/2) — the corners of an
//     up-triangle; vectors a1 = (2,0), a2 = (1,√3).
//   • Bonds: intracell 1-2, 1-3, 2-3 plus intercell 1→2 at (-1,0),
//     1→3 at (0,-1), 2→3 at (1,-1), all with reverses — coordination 4.
//
// Complexity: O(1).

package unitcells

import (
	"math"

	"github.com/katalvlaran/lvlattice/lattice"
)

// Kagome returns the three-site kagome cell with hopping s along each
// corner-sharing triangle edge.
func Kagome(s lattice.Strength) *lattice.Unitcell {
	sqrt3 := math.Sqrt(3)
	uc := lattice.NewUnitcell(
		[][]float64{{2, 0}, {1, sqrt3}},
		[][]float64{{0, 0}, {1, 0}, {0.5, sqrt3 / 2}},
		nil,
	)
	// Up-triangle inside the cell.
	lattice.AddBond(uc, 1, 2, s)
	lattice.AddBond(uc, 1, 3, s)
	lattice.AddBond(uc, 2, 3, s)
	// Down-triangle arms into neighboring cells.
	lattice.AddBond(uc, 1, 2, s, lattice.WithWrap(-1, 0))
	lattice.AddBond(uc, 1, 3, s, lattice.WithWrap(0, -1))
	lattice.AddBond(uc, 2, 3, s, lattice.WithWrap(1, -1))

	return uc
}
