package lattice

// BondOption configures AddBond via functional arguments.
type BondOption func(*bondOptions)

type bondOptions struct {
	wrap      []int
	overwrite bool
}

// WithWrap sets the bond's wrap vector explicitly. The default is the zero
// vector matching the container's periodicity. The length is taken as
// given; bond references are not validated at construction time.
func WithWrap(w ...int) BondOption {
	return func(o *bondOptions) { o.wrap = w }
}

// WithOverwrite appends the forward and reverse bonds unconditionally, so
// duplicates can accumulate. Intentional: the duplicates are collapsed
// later by OptimizeConnections.
func WithOverwrite() BondOption {
	return func(o *bondOptions) { o.overwrite = true }
}

// AddBond appends the bond (from, to, s, wrap) and its synthesized reverse
// (to, from, conj(s), -wrap) to the container, in place.
//
// Without WithOverwrite, each direction is appended only if no existing
// bond matches it exactly on (From, To, Strength, Wrap); duplicates are
// skipped per-direction, so the forward may be added while the reverse is
// suppressed, or vice versa.
//
// Site indices are not validated here; a bad reference surfaces at first
// matrix assembly or rendering access.
// Complexity: O(B) per call for the duplicate scan, O(1) with overwrite.
func AddBond(c Container, from, to int, s Strength, opts ...BondOption) {
	var o bondOptions
	for _, opt := range opts {
		opt(&o)
	}
	wrap := o.wrap
	if wrap == nil {
		wrap = zeroWrap(c.Periodicity())
	}

	fwd := Bond{From: from, To: to, Strength: s, Wrap: copyInts(wrap)}
	rev := fwd.Reverse()

	bs := c.Bonds()
	if o.overwrite {
		c.SetBonds(append(bs, fwd, rev))

		return
	}
	if !containsBond(bs, fwd) {
		bs = append(bs, fwd)
	}
	if !containsBond(bs, rev) {
		bs = append(bs, rev)
	}
	c.SetBonds(bs)
}

// RemoveBondsByStrength drops every bond whose strength compares equal to
// s (exact match; see Strength.Equal). In place, single pass.
// Complexity: O(B).
func RemoveBondsByStrength(c Container, s Strength) {
	bs := c.Bonds()
	kept := bs[:0]
	for _, b := range bs {
		if !b.Strength.Equal(s) {
			kept = append(kept, b)
		}
	}
	c.SetBonds(kept)
}

// SetAllStrengths overwrites every bond's strength with s, in place, with
// no merging.
// Complexity: O(B).
func SetAllStrengths(c Container, s Strength) {
	bs := c.Bonds()
	for i := range bs {
		bs[i].Strength = s
	}
}

// containsBond reports whether bs holds a bond exactly equal to b.
func containsBond(bs []Bond, b Bond) bool {
	for i := range bs {
		if bs[i].Equal(b) {
			return true
		}
	}

	return false
}
