package lattice

// Bond is the atomic edge record shared by Unitcell and Lattice: a directed
// coupling from site From to site To. Site indices are 1-based into the
// owning container's site list. Wrap has one component per periodic axis of
// the owner and counts whole lattice-vector translations the bond crosses;
// an all-zero (or empty, for a finite lattice) Wrap means "same cell".
type Bond struct {
	From     int
	To       int
	Strength Strength
	Wrap     []int
}

// Reverse returns the mirror bond (To, From, conj(Strength), -Wrap).
func (b Bond) Reverse() Bond {
	return Bond{From: b.To, To: b.From, Strength: b.Strength.Conj(), Wrap: negWrap(b.Wrap)}
}

// Equal reports exact per-field equality, wrap compared element-wise.
func (b Bond) Equal(o Bond) bool {
	return b.From == o.From && b.To == o.To && b.Strength.Equal(o.Strength) && wrapEqual(b.Wrap, o.Wrap)
}

// clone returns a deep copy of b (fresh wrap slice).
func (b Bond) clone() Bond {
	b.Wrap = copyInts(b.Wrap)

	return b
}

// Container is the common surface of *Unitcell and *Lattice, letting the
// connection algebra, expansion, and decomposition code operate on either
// uniformly. Site indices are 1-based throughout.
//
// Bonds returns the live backing slice owned by the container; callers
// mutate it through the algebra functions and commit replacements via
// SetBonds. All other accessors return defensive copies.
type Container interface {
	// SiteCount returns the number of sites.
	SiteCount() int

	// SitePosition returns a copy of the coordinates of site i (1-based).
	SitePosition(i int) []float64

	// Periodicity returns the number of lattice vectors (0 for a finite
	// lattice) and therefore the expected Wrap length of every bond.
	Periodicity() int

	// LatticeVectors returns a copy of the periodic lattice vectors.
	LatticeVectors() [][]float64

	// Bonds returns the container's backing bond slice.
	Bonds() []Bond

	// SetBonds replaces the container's bond list. The container takes
	// ownership of the slice.
	SetBonds(bonds []Bond)

	// AddSite appends a site at pos and returns its 1-based index.
	AddSite(pos []float64) int

	// cloneContainer returns a deep copy with the same concrete type.
	cloneContainer() Container
}

// wrapEqual reports element-wise equality of two wrap vectors.
// A nil and an empty wrap compare equal.
func wrapEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// negWrap returns the element-wise negation of w as a fresh slice.
func negWrap(w []int) []int {
	out := make([]int, len(w))
	for i, v := range w {
		out[i] = -v
	}

	return out
}

// subWrap returns a-b element-wise as a fresh slice.
func subWrap(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out
}

// zeroWrap returns an all-zero wrap of length n.
func zeroWrap(n int) []int {
	return make([]int, n)
}

// copyInts returns a fresh copy of v (nil stays nil).
func copyInts(v []int) []int {
	if v == nil {
		return nil
	}
	out := make([]int, len(v))
	copy(out, v)

	return out
}

// copyFloats returns a fresh copy of v.
func copyFloats(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// copyVectors returns a fresh deep copy of a vector list.
func copyVectors(vs [][]float64) [][]float64 {
	out := make([][]float64, len(vs))
	for i, v := range vs {
		out[i] = copyFloats(v)
	}

	return out
}

// copyBonds returns a fresh deep copy of a bond list.
func copyBonds(bs []Bond) []Bond {
	out := make([]Bond, len(bs))
	for i, b := range bs {
		out[i] = b.clone()
	}

	return out
}
