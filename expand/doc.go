// Package expand turns a unit cell into a concrete lattice: grid tiling
// with open, periodic, or semiperiodic boundaries, and breadth-first
// growth of finite flakes bounded by bond distance or by a shape.
//
// What:
//
//   - Tile replicates a cell over an integer repetition grid. The sign
//     pattern of the repetition vector selects the boundary mode per axis:
//     positive entries tile openly (bonds crossing the boundary are
//     dropped), negative entries tile periodically (crossings fold through
//     modular arithmetic into the new bonds' wrap vectors).
//   - TilePeriodic forces every axis periodic; with all-ones repetitions it
//     is the reduction hook spectral callers use to rebuild a single-cell
//     periodic lattice.
//   - GrowBondDistance and GrowShape build open flakes outward from an
//     origin basis site over the conceptual infinite tiling; Sphere and Box
//     are the canned shape predicates.
//
// Why:
//
//   - Condensed-matter pipelines need the same cell realized many ways:
//     infinite (periodic) for Bloch analysis, truncated (open) for edge
//     physics, and grown flakes for finite-size studies.
//
// Complexity:
//
//   - Tile: O(cells·(basis+bonds)) time and memory.
//   - Growth: O(accepted·deg) plus queue churn; termination is the
//     caller's responsibility — an unbounded shape, or a distance bound on
//     a cell with infinite connectivity, never terminates.
//
// Errors:
//
//   - ErrRepetitions: empty repetition vector, zero entries, or length not
//     matching the cell's periodicity.
//   - ErrDimension: periodicity outside {1,2,3} (growth additionally
//     rejects 1, which is unimplemented).
//   - ErrOriginIndex: growth origin outside the basis.
//   - ErrBondDistance: negative bond-distance bound.
//   - ErrNilShape: GrowShape without a predicate.
package expand
