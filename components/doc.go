// Package components decomposes lattice containers along their bond
// graphs: connected-component labeling, splitting into independent
// sublattices, and the bond-to-site transform that inserts a midpoint
// site on every undirected bond.
//
// What:
//
//   - Label assigns every site an integer component label via union-merge
//     over the outgoing bonds and reports the number of distinct labels.
//   - SplitUnitcell / SplitLattice carve a container into one
//     independently-indexed container per component.
//   - BondToSite rewrites each undirected bond pair into two half-bonds
//     meeting at a new midpoint site.
//
// Why:
//
//   - Coupled models often decouple into independent sublattices (e.g.
//     after removing a bond species); spectral and rendering code wants
//     each piece as a self-contained container.
//   - The bond-to-site transform realizes models whose degrees of freedom
//     live on the bonds (e.g. the checkerboard of a square lattice).
//
// Complexity:
//
//   - Label: O(sites·deg) plus O(sites) per label merge; merges are rare
//     relative to sites.
//   - Split: O(sites + bonds) per component.
//   - BondToSite: O(bonds²) worst case for partner pairing.
package components
