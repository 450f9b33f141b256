package components

import "github.com/katalvlaran/lvlattice/lattice"

// componentPlan is one label's induced sublattice: the member sites in
// first-seen order and the bond list remapped onto compacted indices.
type componentPlan struct {
	sites []int
	bonds []lattice.Bond
}

// SplitUnitcell decomposes u into one independently-indexed Unitcell per
// connected component, in label order. A single-component cell yields a
// one-element slice holding a clone.
// Complexity: O(sites + bonds) beyond labeling.
func SplitUnitcell(u *lattice.Unitcell) []*lattice.Unitcell {
	ps := componentPlans(u)
	if ps == nil {
		return []*lattice.Unitcell{u.Clone()}
	}

	vectors := u.LatticeVectors()
	out := make([]*lattice.Unitcell, 0, len(ps))
	for _, p := range ps {
		basis := make([][]float64, 0, len(p.sites))
		for _, site := range p.sites {
			basis = append(basis, u.SitePosition(site))
		}
		out = append(out, lattice.NewUnitcell(vectors, basis, p.bonds))
	}

	return out
}

// SplitLattice decomposes l into one independently-indexed Lattice per
// connected component, each keeping the generating unit cell snapshot and
// tiling record for provenance. A single-component lattice yields a
// one-element slice holding a clone.
func SplitLattice(l *lattice.Lattice) []*lattice.Lattice {
	ps := componentPlans(l)
	if ps == nil {
		return []*lattice.Lattice{l.Clone()}
	}

	vectors := l.LatticeVectors()
	allIdx := l.PositionIndices()
	out := make([]*lattice.Lattice, 0, len(ps))
	for _, p := range ps {
		positions := make([][]float64, 0, len(p.sites))
		posIdx := make([]int, 0, len(p.sites))
		for _, site := range p.sites {
			positions = append(positions, l.SitePosition(site))
			posIdx = append(posIdx, allIdx[site-1])
		}
		out = append(out, lattice.NewLattice(l.Unitcell(), l.Repetitions(), vectors, positions, posIdx, p.bonds))
	}

	return out
}

// componentPlans builds the per-label site lists and remapped bond lists,
// or nil when the container has at most one component.
func componentPlans(c lattice.Container) []componentPlan {
	labels, count := Label(c)
	if count <= 1 {
		return nil
	}

	// Label order follows first appearance over the site index sweep.
	order := make([]int, 0, count)
	slot := make(map[int]int, count)
	for _, l := range labels {
		if _, ok := slot[l]; !ok {
			slot[l] = len(order)
			order = append(order, l)
		}
	}

	ps := make([]componentPlan, len(order))
	remap := make([]int, len(labels)) // original site → compacted index
	for site := 1; site <= len(labels); site++ {
		p := &ps[slot[labels[site-1]]]
		p.sites = append(p.sites, site)
		remap[site-1] = len(p.sites)
	}
	for _, b := range c.Bonds() {
		if b.From < 1 || b.From > len(labels) || b.To < 1 || b.To > len(labels) {
			continue
		}
		p := &ps[slot[labels[b.From-1]]]
		nb := b
		nb.From = remap[b.From-1]
		nb.To = remap[b.To-1]
		p.bonds = append(p.bonds, nb)
	}

	return ps
}
