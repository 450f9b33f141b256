package lattice

// Unitcell is the minimal periodic building block: basis site positions in
// R^D, up to D lattice vectors spanning the periodicity, and bonds over the
// basis indices (bonds may reference neighboring copies via nonzero wraps).
//
// Construct via NewUnitcell, which deep-copies every input so the cell owns
// its data exclusively.
type Unitcell struct {
	vectors [][]float64
	basis   [][]float64
	bonds   []Bond
}

// NewUnitcell builds a Unitcell from lattice vectors, basis positions, and
// bonds, deep-copying all three. Nil slices yield an empty (sentinel) cell.
// Complexity: O(D + N + B).
func NewUnitcell(vectors, basis [][]float64, bonds []Bond) *Unitcell {
	return &Unitcell{
		vectors: copyVectors(vectors),
		basis:   copyVectors(basis),
		bonds:   copyBonds(bonds),
	}
}

// SiteCount returns the number of basis sites.
func (u *Unitcell) SiteCount() int { return len(u.basis) }

// SitePosition returns a copy of the position of basis site i (1-based).
func (u *Unitcell) SitePosition(i int) []float64 { return copyFloats(u.basis[i-1]) }

// Periodicity returns the number of lattice vectors.
func (u *Unitcell) Periodicity() int { return len(u.vectors) }

// LatticeVectors returns a copy of the lattice vectors.
func (u *Unitcell) LatticeVectors() [][]float64 { return copyVectors(u.vectors) }

// Basis returns a copy of all basis positions in site order.
func (u *Unitcell) Basis() [][]float64 { return copyVectors(u.basis) }

// Bonds returns the backing bond slice; see Container.
func (u *Unitcell) Bonds() []Bond { return u.bonds }

// SetBonds replaces the bond list; see Container.
func (u *Unitcell) SetBonds(bonds []Bond) { u.bonds = bonds }

// AddSite appends a basis site at pos and returns its 1-based index.
func (u *Unitcell) AddSite(pos []float64) int {
	u.basis = append(u.basis, copyFloats(pos))

	return len(u.basis)
}

// Clone returns a deep copy of the cell.
// Complexity: O(D + N + B).
func (u *Unitcell) Clone() *Unitcell {
	return NewUnitcell(u.vectors, u.basis, u.bonds)
}

// Optimized returns a canonicalized deep copy (see OptimizeConnections),
// leaving u untouched.
func (u *Unitcell) Optimized() *Unitcell {
	v := u.Clone()
	OptimizeConnections(v)

	return v
}

// WithBond returns a deep copy of u with the given bond (and its reverse)
// added; the copy-returning variant of AddBond.
func (u *Unitcell) WithBond(from, to int, s Strength, opts ...BondOption) *Unitcell {
	v := u.Clone()
	AddBond(v, from, to, s, opts...)

	return v
}

func (u *Unitcell) cloneContainer() Container { return u.Clone() }
