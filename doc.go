// Package lvlattice builds, transforms, and persists bond graphs of
// crystal lattices — from predefined unit cells to finite lattices ready
// for interaction-matrix assembly.
//
// 🚀 What is lvlattice?
//
//	A library that brings together:
//		• Core primitives: unit cells, lattices, bonds with numeric or
//		  symbolic coupling strengths and periodic wraps
//		• A catalog of standard cells: chain, square, triangular,
//		  honeycomb, kagome, simple cubic, diamond
//		• Expansion: periodic / open / semiperiodic tiling and BFS growth
//		  by bond distance or geometric shape
//		• Connectivity: component labeling, splitting, bond-to-site
//		  subdivision
//		• Matrices: real-space and Bloch (k-space) interaction matrices
//		• Persistence: YAML documents for cells and lattices
//
// ✨ Why choose lvlattice?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Value-safe – constructors deep-copy; accessors hand out copies
//   - Extensible – symbolic strengths with pluggable evaluation
//
// Under the hood, everything is organized under subpackages:
//
//	lattice/    — Unitcell, Lattice, Bond, Strength & bond-list operations
//	unitcells/  — the predefined cell catalog
//	expand/     — tiling and shape/distance growth
//	components/ — labeling, splitting, bond-to-site subdivision
//	bloch/      — real-space & k-space interaction matrices
//	expr/       — arithmetic evaluation for symbolic strengths
//	latticeio/  — YAML encoding and decoding
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
//	a 2×2 open tiling of the one-site square cell: four sites, four
//	surviving edges, boundary-crossing bonds dropped.
//
//	go get github.com/katalvlaran/lvlattice
package lvlattice
