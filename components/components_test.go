package components_test

import (
	"testing"

	"github.com/katalvlaran/lvlattice/components"
	"github.com/katalvlaran/lvlattice/lattice"
)

// twoTriangles returns a 2D cell holding two disjoint triangles:
// sites 1-2-3 and 4-5-6, symmetric bonds, no coupling between them.
func twoTriangles() *lattice.Unitcell {
	uc := lattice.NewUnitcell(
		[][]float64{{1, 0}, {0, 1}},
		[][]float64{{0, 0}, {1, 0}, {0.5, 1}, {3, 0}, {4, 0}, {3.5, 1}},
		nil,
	)
	for _, pair := range [][2]int{{1, 2}, {2, 3}, {3, 1}, {4, 5}, {5, 6}, {6, 4}} {
		lattice.AddBond(uc, pair[0], pair[1], lattice.Real(1))
	}

	return uc
}

// TestLabel_TwoComponents verifies that two disjoint triangles yield two
// labels with three sites each.
func TestLabel_TwoComponents(t *testing.T) {
	labels, count := components.Label(twoTriangles())
	if count != 2 {
		t.Fatalf("label count = %d; want 2", count)
	}
	bySize := make(map[int]int)
	for _, l := range labels {
		bySize[l]++
	}
	for l, n := range bySize {
		if n != 3 {
			t.Errorf("label %d covers %d sites; want 3", l, n)
		}
	}
	if labels[0] == labels[3] {
		t.Error("sites 1 and 4 share a label across disjoint triangles")
	}
}

// TestLabel_MergeAcrossOrder verifies the min-merge when a later site
// bridges two already-assigned label classes.
func TestLabel_MergeAcrossOrder(t *testing.T) {
	uc := lattice.NewUnitcell(
		[][]float64{{1, 0}, {0, 1}},
		[][]float64{{0, 0}, {1, 0}, {2, 0}},
		nil,
	)
	// Site 3 bridges 1 and 2 only through its own bonds, so 1 and 2 get
	// distinct fresh labels first and must be merged when 3 is visited.
	uc.SetBonds([]lattice.Bond{
		{From: 3, To: 1, Strength: lattice.Real(1), Wrap: []int{0, 0}},
		{From: 3, To: 2, Strength: lattice.Real(1), Wrap: []int{0, 0}},
	})

	labels, count := components.Label(uc)
	if count != 1 {
		t.Fatalf("label count = %d; want 1 after merge", count)
	}
	if labels[0] != labels[1] || labels[1] != labels[2] {
		t.Errorf("labels = %v; want all equal", labels)
	}
}

// TestSplitUnitcell verifies induced bond lists and first-seen compaction.
func TestSplitUnitcell(t *testing.T) {
	parts := components.SplitUnitcell(twoTriangles())
	if len(parts) != 2 {
		t.Fatalf("part count = %d; want 2", len(parts))
	}
	for i, p := range parts {
		if got := p.SiteCount(); got != 3 {
			t.Errorf("part %d site count = %d; want 3", i, got)
		}
		if got := len(p.Bonds()); got != 6 {
			t.Errorf("part %d bond count = %d; want 6", i, got)
		}
		for _, b := range p.Bonds() {
			if b.From < 1 || b.From > 3 || b.To < 1 || b.To > 3 {
				t.Errorf("part %d bond %d->%d not re-indexed from 1", i, b.From, b.To)
			}
		}
	}
	// Second component keeps its geometry.
	if pos := parts[1].SitePosition(1); pos[0] != 3 || pos[1] != 0 {
		t.Errorf("part 1 site 1 position = %v; want [3 0]", pos)
	}
}

// TestSplitUnitcell_SingleComponent verifies the whole-clone path.
func TestSplitUnitcell_SingleComponent(t *testing.T) {
	uc := lattice.NewUnitcell([][]float64{{1, 0}, {0, 1}}, [][]float64{{0, 0}, {1, 0}}, nil)
	lattice.AddBond(uc, 1, 2, lattice.Real(1))

	parts := components.SplitUnitcell(uc)
	if len(parts) != 1 {
		t.Fatalf("part count = %d; want 1", len(parts))
	}
	if parts[0] == uc {
		t.Error("single-component split returned the receiver, not a copy")
	}
	if parts[0].SiteCount() != 2 || len(parts[0].Bonds()) != 2 {
		t.Errorf("clone shape = %d sites, %d bonds; want 2, 2", parts[0].SiteCount(), len(parts[0].Bonds()))
	}
}

// TestSplitLattice verifies provenance fields survive the split.
func TestSplitLattice(t *testing.T) {
	uc := twoTriangles()
	lat := lattice.NewLattice(uc, nil, nil, uc.Basis(), []int{1, 2, 3, 4, 5, 6}, uc.Bonds())

	parts := components.SplitLattice(lat)
	if len(parts) != 2 {
		t.Fatalf("part count = %d; want 2", len(parts))
	}
	if idx := parts[1].PositionIndices(); len(idx) != 3 || idx[0] != 4 {
		t.Errorf("part 1 positions_indices = %v; want [4 5 6]", idx)
	}
}

// TestBondToSite verifies midpoint insertion, wrap splitting, and the
// doubling bookkeeping on a wrapped bond pair.
func TestBondToSite(t *testing.T) {
	uc := lattice.NewUnitcell([][]float64{{2, 0}, {0, 2}}, [][]float64{{0, 0}}, nil)
	lattice.AddBond(uc, 1, 1, lattice.Real(3), lattice.WithWrap(1, 0))

	components.BondToSite(uc)

	if got := uc.SiteCount(); got != 2 {
		t.Fatalf("site count = %d; want 2 (one midpoint added)", got)
	}
	// Midpoint of site 1 and its (1,0)-wrapped image: (0,0)+(2,0) over 2.
	if pos := uc.SitePosition(2); pos[0] != 1 || pos[1] != 0 {
		t.Errorf("midpoint position = %v; want [1 0]", pos)
	}
	bs := uc.Bonds()
	if len(bs) != 4 {
		t.Fatalf("bond count = %d; want 4 (doubled)", len(bs))
	}

	// Midpoint participates only in zero-wrap and original-wrap bonds.
	for _, b := range bs {
		if b.From != 2 && b.To != 2 {
			t.Fatalf("bond %d->%d skips the midpoint", b.From, b.To)
		}
		if !b.Strength.Equal(lattice.Real(3)) {
			t.Errorf("half-bond strength = %v; want 3.0", b.Strength)
		}
		w := b.Wrap
		if w[1] != 0 || (w[0] != 0 && w[0] != 1 && w[0] != -1) {
			t.Errorf("half-bond wrap = %v; want zero or ±(1,0)", w)
		}
	}
	if missing := lattice.MissingReverseBonds(uc); len(missing) != 0 {
		t.Errorf("%d half-bonds lack reverses", len(missing))
	}
}

// TestBondToSite_DirectedOnly verifies that a lone directed bond splits
// into two forward halves without synthesized reverses.
func TestBondToSite_DirectedOnly(t *testing.T) {
	uc := lattice.NewUnitcell([][]float64{{1, 0}, {0, 1}}, [][]float64{{0, 0}, {1, 0}}, nil)
	uc.SetBonds([]lattice.Bond{{From: 1, To: 2, Strength: lattice.Symbolic("J"), Wrap: []int{0, 0}}})

	components.BondToSite(uc)
	if uc.SiteCount() != 3 || len(uc.Bonds()) != 2 {
		t.Errorf("got %d sites, %d bonds; want 3 sites, 2 bonds", uc.SiteCount(), len(uc.Bonds()))
	}
}
