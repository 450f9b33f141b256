package lattice

// Lattice is a concrete (possibly finite) realization of a unit cell:
// absolute site positions, a parallel map from each site back to its
// originating basis index, bonds over lattice site indices, and the
// lattice's own periodicity (empty vectors for an open/finite lattice).
//
// A Lattice exclusively owns its arrays and stores a deep-copied snapshot
// of the generating Unitcell for provenance; mutating the original cell
// after construction never affects an already-built Lattice.
type Lattice struct {
	unitcell    *Unitcell
	repetitions []int
	vectors     [][]float64
	positions   [][]float64
	posIndices  []int
	bonds       []Bond
}

// NewLattice assembles a Lattice, deep-copying every argument. A nil uc is
// replaced by an empty sentinel Unitcell (ad-hoc lattices). repetitions may
// be nil when the lattice was not cell-tiled, and vectors may be nil for a
// finite lattice. positions and posIndices must be parallel.
// Complexity: O(D + N + B) over the copied data.
func NewLattice(uc *Unitcell, repetitions []int, vectors, positions [][]float64, posIndices []int, bonds []Bond) *Lattice {
	if uc == nil {
		uc = NewUnitcell(nil, nil, nil)
	}

	return &Lattice{
		unitcell:    uc.Clone(),
		repetitions: copyInts(repetitions),
		vectors:     copyVectors(vectors),
		positions:   copyVectors(positions),
		posIndices:  copyInts(posIndices),
		bonds:       copyBonds(bonds),
	}
}

// SiteCount returns the number of lattice sites.
func (l *Lattice) SiteCount() int { return len(l.positions) }

// SitePosition returns a copy of the absolute position of site i (1-based).
func (l *Lattice) SitePosition(i int) []float64 { return copyFloats(l.positions[i-1]) }

// Periodicity returns the number of the lattice's own lattice vectors.
func (l *Lattice) Periodicity() int { return len(l.vectors) }

// LatticeVectors returns a copy of the lattice's own periodicity vectors.
func (l *Lattice) LatticeVectors() [][]float64 { return copyVectors(l.vectors) }

// Positions returns a copy of all absolute site positions, in site order.
// Read-only view consumed by rendering.
func (l *Lattice) Positions() [][]float64 { return copyVectors(l.positions) }

// PositionIndices returns a copy of the site-to-basis-index map: entry i-1
// holds the basis index (1-based) that lattice site i originated from, or 0
// for sites without a generating basis site (e.g. bond midpoints).
func (l *Lattice) PositionIndices() []int { return copyInts(l.posIndices) }

// Repetitions returns a copy of the tiling vector the lattice was built
// with, or nil if it was not cell-tiled.
func (l *Lattice) Repetitions() []int { return copyInts(l.repetitions) }

// Unitcell returns the snapshot of the generating unit cell. The snapshot
// is owned by the lattice; clone it before mutating.
func (l *Lattice) Unitcell() *Unitcell { return l.unitcell }

// Bonds returns the backing bond slice; see Container.
func (l *Lattice) Bonds() []Bond { return l.bonds }

// SetBonds replaces the bond list; see Container.
func (l *Lattice) SetBonds(bonds []Bond) { l.bonds = bonds }

// AddSite appends a site at pos with no originating basis index (recorded
// as 0) and returns its 1-based index.
func (l *Lattice) AddSite(pos []float64) int {
	l.positions = append(l.positions, copyFloats(pos))
	l.posIndices = append(l.posIndices, 0)

	return len(l.positions)
}

// Clone returns a deep copy of the lattice.
func (l *Lattice) Clone() *Lattice {
	return NewLattice(l.unitcell, l.repetitions, l.vectors, l.positions, l.posIndices, l.bonds)
}

// Optimized returns a canonicalized deep copy (see OptimizeConnections),
// leaving l untouched.
func (l *Lattice) Optimized() *Lattice {
	c := l.Clone()
	OptimizeConnections(c)

	return c
}

// WithBond returns a deep copy of l with the given bond (and its reverse)
// added; the copy-returning variant of AddBond.
func (l *Lattice) WithBond(from, to int, s Strength, opts ...BondOption) *Lattice {
	c := l.Clone()
	AddBond(c, from, to, s, opts...)

	return c
}

func (l *Lattice) cloneContainer() Container { return l.Clone() }
