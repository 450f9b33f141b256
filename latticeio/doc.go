// Package latticeio persists unit cells and lattices as YAML documents.
//
// What:
//
//   - EncodeUnitcell / DecodeUnitcell and EncodeLattice / DecodeLattice
//     over io.Writer / io.Reader.
//   - SaveUnitcell / LoadUnitcell and SaveLattice / LoadLattice file
//     wrappers.
//
// Format:
//
// Documents are plain mappings: lattice_vectors, basis, and connections
// for a cell; a lattice adds unitcell, unitcell_repetitions, positions,
// positions_indices, and its own lattice_vectors and connections. A
// strength serializes as {re, im} for numerics or {symbol} for symbolic
// labels, so round-tripping preserves the strength kind exactly.
//
// Errors:
//
//   - ErrDecode: malformed YAML or a strength carrying neither a numeric
//     value nor a symbol.
package latticeio
