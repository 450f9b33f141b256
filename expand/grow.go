package expand

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/lattice"
)

// growKey identifies a node of the conceptual infinite tiling: the integer
// cell coordinate plus the basis index. Dedup key for first-popped-wins.
type growKey struct {
	c0, c1, c2 int
	basis      int
}

// growItem is one FIFO frontier entry.
type growItem struct {
	pos   []float64
	cell  [3]int
	basis int
	dist  int
}

// grower holds the mutable BFS state shared by both growth variants.
type grower struct {
	basis     [][]float64
	vectors   [][]float64
	outgoing  [][]lattice.Bond
	queue     []growItem
	accepted  map[growKey]int // growKey → 1-based site index
	positions [][]float64
	posIdx    []int
	bonds     []lattice.Bond
}

// GrowBondDistance builds an open, finite lattice by breadth-first growth
// from basis site origin: every site reachable within maxDist bonds is
// accepted, in FIFO distance order. Already-accepted neighbors are linked
// immediately at zero wrap (the flake is fully flattened); unseen
// neighbors are enqueued while the current node's distance is strictly
// below maxDist. After the sweep a repair pass appends the reverse of any
// forward bond that lacks one.
//
// Only 2- and 3-periodic cells are supported (ErrDimension otherwise;
// growth is unimplemented for chains). Termination requires the cell's
// connectivity to be finite; that is the caller's responsibility.
// Complexity: O(accepted·deg) expected.
func GrowBondDistance(uc *lattice.Unitcell, origin, maxDist int) (*lattice.Lattice, error) {
	if err := validateGrowth(uc, origin); err != nil {
		return nil, err
	}
	if maxDist < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBondDistance, maxDist)
	}

	admit := func(cur growItem, _ growItem) bool { return cur.dist < maxDist }

	return runGrowth(uc, origin, admit), nil
}

// ShapeFunc decides whether a candidate site belongs to the grown flake,
// given its position relative to the origin site.
type ShapeFunc func(rel []float64) bool

// GrowShape builds an open, finite lattice like GrowBondDistance, but the
// admission test is the shape predicate evaluated at the candidate's
// position translated so the origin site sits at the shape's local zero.
// A shape unbounded in any direction causes non-termination; not guarded.
func GrowShape(uc *lattice.Unitcell, origin int, shape ShapeFunc) (*lattice.Lattice, error) {
	if err := validateGrowth(uc, origin); err != nil {
		return nil, err
	}
	if shape == nil {
		return nil, ErrNilShape
	}

	at := uc.SitePosition(origin)
	admit := func(_ growItem, next growItem) bool {
		rel := make([]float64, len(next.pos))
		for i := range rel {
			rel[i] = next.pos[i] - at[i]
		}

		return shape(rel)
	}

	return runGrowth(uc, origin, admit), nil
}

// validateGrowth checks periodicity and origin before any state is built.
func validateGrowth(uc *lattice.Unitcell, origin int) error {
	if d := uc.Periodicity(); d != 2 && d != 3 {
		return fmt.Errorf("%w: periodicity %d (growth needs 2 or 3)", ErrDimension, d)
	}
	if origin < 1 || origin > uc.SiteCount() {
		return fmt.Errorf("%w: %d of %d basis sites", ErrOriginIndex, origin, uc.SiteCount())
	}

	return nil
}

// runGrowth is the shared BFS sweep. admit receives the current (popped)
// node and the candidate neighbor and decides enqueueing; linking to
// already-accepted sites never consults admit.
func runGrowth(uc *lattice.Unitcell, origin int, admit func(cur, next growItem) bool) *lattice.Lattice {
	g := &grower{
		basis:    uc.Basis(),
		vectors:  uc.LatticeVectors(),
		outgoing: lattice.OutgoingBonds(uc),
		accepted: make(map[growKey]int),
	}

	g.queue = append(g.queue, growItem{pos: uc.SitePosition(origin), basis: origin})
	for len(g.queue) > 0 {
		it := g.queue[0]
		g.queue = g.queue[1:]
		if _, ok := g.accepted[keyOf(it)]; ok {
			continue // first-popped-wins
		}
		site := g.accept(it)

		for _, b := range g.outgoing[it.basis-1] {
			next := g.neighbor(it, b)
			if nsite, ok := g.accepted[keyOf(next)]; ok {
				g.bonds = append(g.bonds, lattice.Bond{From: site, To: nsite, Strength: b.Strength})
				continue
			}
			if admit(it, next) {
				g.queue = append(g.queue, next)
			}
		}
	}
	g.repairReverses()

	return lattice.NewLattice(uc, nil, nil, g.positions, g.posIdx, g.bonds)
}

// accept registers a popped node as a lattice site and returns its index.
func (g *grower) accept(it growItem) int {
	g.positions = append(g.positions, it.pos)
	g.posIdx = append(g.posIdx, it.basis)
	site := len(g.positions)
	g.accepted[keyOf(it)] = site

	return site
}

// neighbor derives the frontier entry reached from it along bond b:
// destination cell shifted by the bond's wrap, position displaced by the
// basis offset plus the wrap's lattice-vector translation.
func (g *grower) neighbor(it growItem, b lattice.Bond) growItem {
	pos := append([]float64(nil), it.pos...)
	from, to := g.basis[it.basis-1], g.basis[b.To-1]
	for i := range pos {
		pos[i] += to[i] - from[i]
	}
	cell := it.cell
	for ax := range g.vectors {
		w := wrapComponent(b.Wrap, ax)
		if w == 0 {
			continue
		}
		axpy(pos, float64(w), g.vectors[ax])
		cell[ax] += w
	}

	return growItem{pos: pos, cell: cell, basis: b.To, dist: it.dist + 1}
}

// repairReverses appends the reverse of every forward bond lacking one,
// matching on index pair and strength at zero wrap. A repair pass, not a
// structural guarantee during traversal.
func (g *grower) repairReverses() {
	present := make(map[string]struct{}, len(g.bonds))
	for _, b := range g.bonds {
		present[flatBondKey(b)] = struct{}{}
	}
	for _, b := range append([]lattice.Bond(nil), g.bonds...) {
		rev := b.Reverse()
		key := flatBondKey(rev)
		if _, ok := present[key]; ok {
			continue
		}
		present[key] = struct{}{}
		g.bonds = append(g.bonds, rev)
	}
}

// keyOf projects a frontier entry onto its dedup key.
func keyOf(it growItem) growKey {
	return growKey{c0: it.cell[0], c1: it.cell[1], c2: it.cell[2], basis: it.basis}
}

// flatBondKey encodes a zero-wrap bond for the repair pass's set lookups.
func flatBondKey(b lattice.Bond) string {
	return fmt.Sprintf("%d>%d#%t#%s", b.From, b.To, b.Strength.IsSymbolic(), b.Strength)
}
