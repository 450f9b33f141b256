// SPDX-License-Identifier: MIT

package bloch

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/lvlattice/lattice"
)

// Option configures matrix assembly via functional arguments.
type Option func(*options)

type options struct {
	hermitian bool
}

// WithHermitian replaces the assembled matrix M with (M + Mᴴ)/2.
func WithHermitian() Option {
	return func(o *options) { o.hermitian = true }
}

// RealSpace assembles the N×N real-space coupling matrix of c:
// M[from,to] += strength, accumulated over every bond, so parallel bonds
// between the same ordered pair sum automatically. Entries are complex
// regardless of the strength kind.
//
// Returns ErrSymbolicStrength for a non-numeric strength and ErrBondIndex
// for a bond referencing a site outside [1, N] — the first point where an
// unvalidated bond list surfaces a bad reference.
// Complexity: O(N² + B).
func RealSpace(c lattice.Container, opts ...Option) (*Dense, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	n := c.SiteCount()
	m := NewDense(n)
	for _, b := range c.Bonds() {
		v, err := bondValue(b, n)
		if err != nil {
			return nil, err
		}
		m.data[(b.From-1)*n+(b.To-1)] += v
	}
	if o.hermitian {
		m.Hermitize()
	}

	return m, nil
}

// Bloch assembles the k-space matrix of c: each bond contributes
// strength·exp(-i·k·Δr) to M[from,to], where Δr is the geometric
// displacement position[to] - position[from] + Σ wrap[d]·latticeVector[d].
// Bloch(c, 0) equals RealSpace(c) since exp(0) = 1 for every bond
// regardless of wrap.
//
// len(k) must equal the container's spatial dimension
// (ErrDimensionMismatch otherwise).
// Complexity: O(N² + B·D).
func Bloch(c lattice.Container, k []float64, opts ...Option) (*Dense, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	n := c.SiteCount()
	if n > 0 {
		if dim := len(c.SitePosition(1)); len(k) != dim {
			return nil, fmt.Errorf("%w: len(k)=%d, spatial dimension %d", ErrDimensionMismatch, len(k), dim)
		}
	}
	vectors := c.LatticeVectors()

	m := NewDense(n)
	for _, b := range c.Bonds() {
		v, err := bondValue(b, n)
		if err != nil {
			return nil, err
		}

		from := c.SitePosition(b.From)
		to := c.SitePosition(b.To)
		phase := 0.0
		for d := 0; d < len(k); d++ {
			dr := to[d] - from[d]
			for ax, vec := range vectors {
				if ax < len(b.Wrap) && b.Wrap[ax] != 0 && d < len(vec) {
					dr += float64(b.Wrap[ax]) * vec[d]
				}
			}
			phase += k[d] * dr
		}
		m.data[(b.From-1)*n+(b.To-1)] += v * cmplx.Exp(complex(0, -phase))
	}
	if o.hermitian {
		m.Hermitize()
	}

	return m, nil
}

// bondValue resolves a bond's numeric contribution and validates its
// endpoints against the matrix dimension.
func bondValue(b lattice.Bond, n int) (complex128, error) {
	if b.From < 1 || b.From > n || b.To < 1 || b.To > n {
		return 0, fmt.Errorf("%w: bond %d->%d in a %d-site container", ErrBondIndex, b.From, b.To, n)
	}
	v, ok := b.Strength.Numeric()
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrSymbolicStrength, b.Strength)
	}

	return v, nil
}
