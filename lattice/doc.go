// Package lattice defines the shared bond-list model for crystal-lattice
// graphs and the connection algebra that operates on it.
//
// What:
//
//   - Strength: tagged union of a numeric (complex) coupling and an opaque
//     symbolic label, with explicit Add/Mul/Conj/Equal combinators.
//   - Bond: a directed edge (From, To, Strength, Wrap) over 1-based site
//     indices, where Wrap counts whole lattice-vector translations.
//   - Unitcell: basis sites + lattice vectors + bonds; the minimal periodic
//     building block.
//   - Lattice: a concrete realization with absolute positions, a site-to-basis
//     index map, and a deep-copied snapshot of its generating Unitcell.
//   - Connection algebra: AddBond (with automatic reverse-bond synthesis),
//     RemoveBondsByStrength, SetAllStrengths, OptimizeConnections (merge
//     parallel bonds, prune near-zero couplings), MapStrengths (exact and
//     textual remapping plus an opt-in evaluation hook), AddNNNBonds
//     (next-nearest-neighbor synthesis by bond composition), and Squared.
//   - Derived views: per-site outgoing-bond lists, per-site neighbor lists,
//     distinct-strength enumeration, reverse-bond diagnostics.
//
// Why:
//
//   - Condensed-matter models describe couplings as a unit cell's local bond
//     graph; every downstream step (tiling, decomposition, matrix assembly,
//     rendering) consumes this one representation.
//
// Conventions:
//
//   - Site indices are 1-based, matching the positional data model.
//   - For an undirected coupling (i,j,s,w) the reverse (j,i,conj(s),-w) is
//     expected to exist. Symmetric helpers always emit both directions; the
//     invariant is advisory and checked by MissingReverseBonds, never
//     enforced structurally.
//   - All operations are single-threaded and mutate their container in place
//     unless the name says otherwise (Optimized, WithBond, Squared).
//
// Errors:
//
//   - ErrStrengthEval: a symbolic strength failed to evaluate under
//     MapStrengths' evaluation hook.
package lattice
