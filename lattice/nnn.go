package lattice

import "fmt"

// NNNOption configures AddNNNBonds via functional arguments.
type NNNOption func(*nnnOptions)

type nnnOptions struct {
	strength *Strength
	multiply bool
	restrict []Strength
}

// WithNNNStrength assigns the literal strength s to every synthesized
// next-nearest-neighbor bond. Overrides the default symbolic label.
func WithNNNStrength(s Strength) NNNOption {
	return func(o *nnnOptions) { o.strength = &s }
}

// WithNNNMultiply assigns each synthesized bond the product of the two
// composed bonds' strengths (numeric product, or textual "a*b" when a
// symbolic side is involved).
func WithNNNMultiply() NNNOption {
	return func(o *nnnOptions) { o.multiply = true }
}

// WithRestrictTo skips any bond pair unless both participating strengths
// are members of the given set (exact equality).
func WithRestrictTo(ss ...Strength) NNNOption {
	return func(o *nnnOptions) { o.restrict = ss }
}

// AddNNNBonds synthesizes next-nearest-neighbor bonds by composing pairs of
// outgoing bonds: for every site i and every unordered pair (c1, c2) of
// distinct outgoing bonds from i (first bond's enumeration index strictly
// below the second's, so each pair is visited exactly once), a bond from
// c1.To to c2.To is appended with wrap c2.Wrap-c1.Wrap, along with its
// mirror from c2.To to c1.To with wrap c1.Wrap-c2.Wrap.
//
// Default strength is the symbolic label "NNN<c1.To>to<c2.To>"; see
// WithNNNStrength and WithNNNMultiply. New bonds are appended, never
// merged; follow with OptimizeConnections to collapse duplicates.
// Complexity: O(sum over sites of deg²).
func AddNNNBonds(c Container, opts ...NNNOption) {
	var o nnnOptions
	for _, opt := range opts {
		opt(&o)
	}

	out := OutgoingBonds(c)
	bs := c.Bonds()
	for site := 0; site < len(out); site++ {
		arms := out[site]
		for x := 0; x < len(arms); x++ {
			for y := x + 1; y < len(arms); y++ {
				c1, c2 := arms[x], arms[y]
				if o.restrict != nil && (!memberOf(o.restrict, c1.Strength) || !memberOf(o.restrict, c2.Strength)) {
					continue
				}

				var s Strength
				switch {
				case o.strength != nil:
					s = *o.strength
				case o.multiply:
					s = c1.Strength.Mul(c2.Strength)
				default:
					s = Symbolic(fmt.Sprintf("NNN%dto%d", c1.To, c2.To))
				}

				bs = append(bs,
					Bond{From: c1.To, To: c2.To, Strength: s, Wrap: subWrap(c2.Wrap, c1.Wrap)},
					Bond{From: c2.To, To: c1.To, Strength: s.Conj(), Wrap: subWrap(c1.Wrap, c2.Wrap)},
				)
			}
		}
	}
	c.SetBonds(bs)
}

// Squared returns a new container of the same concrete type whose bond set
// is the "squared" coupling graph: the full next-nearest-neighbor closure
// with multiplied strengths, canonicalized by OptimizeConnections. The
// input is never mutated. Used to turn a nearest-neighbor Hamiltonian into
// the generator of H².
func Squared(c Container) Container {
	sq := c.cloneContainer()
	AddNNNBonds(sq, WithNNNMultiply())
	OptimizeConnections(sq)

	return sq
}

// memberOf reports whether s compares equal to any element of set.
func memberOf(set []Strength, s Strength) bool {
	for _, m := range set {
		if m.Equal(s) {
			return true
		}
	}

	return false
}
