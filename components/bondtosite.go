package components

import "github.com/katalvlaran/lvlattice/lattice"

// BondToSite rewrites c in place so every undirected bond gains a site at
// its geometric midpoint: the bond pair (f,t,s,w)/(t,f,s*,-w) becomes four
// half-bonds f↔m and m↔t of the same strength, where m is the new midpoint
// site. Wraps are split so the midpoint only participates in zero-wrap and
// original-wrap bonds: the crossing stays on the far half (m→t carries w,
// t→m carries -w).
//
// Each forward/reverse pair is visited exactly once, tracked by a treated
// set keyed on swapped endpoints, conjugated strength, and negated wrap. A
// directed-only bond without a partner is split into its two forward
// halves with no synthesized reverses. Doubles the bond count; grows the
// site count by the number of undirected bonds.
// Complexity: O(bonds²) worst case for partner search.
func BondToSite(c lattice.Container) {
	bs := append([]lattice.Bond(nil), c.Bonds()...)
	vectors := c.LatticeVectors()
	treated := make([]bool, len(bs))
	zero := make([]int, c.Periodicity())

	out := make([]lattice.Bond, 0, 2*len(bs))
	for i, b := range bs {
		if treated[i] {
			continue
		}
		treated[i] = true
		rev := b.Reverse()

		paired := false
		for j := i + 1; j < len(bs); j++ {
			if !treated[j] && bs[j].Equal(rev) {
				treated[j] = true
				paired = true
				break
			}
		}

		mid := midpoint(c, b, vectors)
		m := c.AddSite(mid)

		out = append(out,
			lattice.Bond{From: b.From, To: m, Strength: b.Strength, Wrap: append([]int(nil), zero...)},
			lattice.Bond{From: m, To: b.To, Strength: b.Strength, Wrap: append([]int(nil), b.Wrap...)},
		)
		if paired {
			out = append(out,
				lattice.Bond{From: m, To: b.From, Strength: rev.Strength, Wrap: append([]int(nil), zero...)},
				lattice.Bond{From: b.To, To: m, Strength: rev.Strength, Wrap: append([]int(nil), rev.Wrap...)},
			)
		}
	}
	c.SetBonds(out)
}

// midpoint returns the geometric center of bond b, folding the wrap's
// lattice-vector displacement into the far endpoint.
func midpoint(c lattice.Container, b lattice.Bond, vectors [][]float64) []float64 {
	from := c.SitePosition(b.From)
	to := c.SitePosition(b.To)
	mid := make([]float64, len(from))
	for i := range mid {
		mid[i] = from[i] + to[i]
	}
	for ax, v := range vectors {
		if ax >= len(b.Wrap) || b.Wrap[ax] == 0 {
			continue
		}
		w := float64(b.Wrap[ax])
		for i := range mid {
			if i < len(v) {
				mid[i] += w * v[i]
			}
		}
	}
	for i := range mid {
		mid[i] /= 2
	}

	return mid
}
