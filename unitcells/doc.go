// SPDX-License-Identifier: MIT
// Package: lvlattice/unitcells
//
// Package unitcells is a catalog of predefined crystal unit cells.
//
// What:
//
//   - 2D families: Chain, Square, Triangular, Honeycomb, Kagome.
//   - 3D families: SimpleCubic, Diamond.
//
// Every constructor takes the nearest-neighbor coupling strength and
// returns a fresh, fully-populated *lattice.Unitcell with symmetric
// bonds: for every stored (i, j, s, w) the reverse (j, i, conj(s), -w)
// is stored too, so lattice.MissingReverseBonds reports nothing on any
// catalog cell.
//
// Conventions:
//
//   - Site indices are 1-based, matching the lattice package.
//   - Lattice constants are fixed per family (documented per file);
//     rescale positions after tiling if physical units matter.
//   - Constructors never fail: geometry is compile-time data.
package unitcells
