package lattice_test

import (
	"testing"

	"github.com/katalvlaran/lvlattice/lattice"
)

// squareCell returns the 1-site square unit cell with its 4 symmetric
// nearest-neighbor bonds of strength s.
func squareCell(s lattice.Strength) *lattice.Unitcell {
	uc := lattice.NewUnitcell([][]float64{{1, 0}, {0, 1}}, [][]float64{{0, 0}}, nil)
	lattice.AddBond(uc, 1, 1, s, lattice.WithWrap(1, 0))
	lattice.AddBond(uc, 1, 1, s, lattice.WithWrap(0, 1))

	return uc
}

// TestAddNNNBonds_DefaultLabels verifies pair enumeration (each unordered
// pair once), wrap composition, and the AUTO label.
func TestAddNNNBonds_DefaultLabels(t *testing.T) {
	uc := squareCell(lattice.Real(1))
	before := len(uc.Bonds()) // 4 arms

	lattice.AddNNNBonds(uc)
	// C(4,2)=6 unordered pairs, each appending a bond and its mirror.
	want := before + 12
	if got := len(uc.Bonds()); got != want {
		t.Fatalf("bond count = %d; want %d", got, want)
	}

	bs := uc.Bonds()[before:]
	// First pair composes arm (1,0) with arm (-1,0): wrap (-2,0).
	if w := bs[0].Wrap; w[0] != -2 || w[1] != 0 {
		t.Errorf("first NNN wrap = %v; want [-2 0]", w)
	}
	if !bs[0].Strength.Equal(lattice.Symbolic("NNN1to1")) {
		t.Errorf("first NNN strength = %v; want NNN1to1", bs[0].Strength)
	}
	if w := bs[1].Wrap; w[0] != 2 || w[1] != 0 {
		t.Errorf("mirror NNN wrap = %v; want [2 0]", w)
	}
}

// TestAddNNNBonds_Multiply verifies the multiplied-strength policy.
func TestAddNNNBonds_Multiply(t *testing.T) {
	uc := twoSiteCell()
	uc.SetBonds([]lattice.Bond{
		{From: 1, To: 2, Strength: lattice.Real(2), Wrap: []int{0, 0}},
		{From: 1, To: 2, Strength: lattice.Real(3), Wrap: []int{1, 0}},
	})

	lattice.AddNNNBonds(uc, lattice.WithNNNMultiply())
	bs := uc.Bonds()
	if len(bs) != 4 {
		t.Fatalf("bond count = %d; want 4", len(bs))
	}
	if !bs[2].Strength.Equal(lattice.Real(6)) {
		t.Errorf("NNN strength = %v; want 6.0", bs[2].Strength)
	}
	if w := bs[2].Wrap; w[0] != 1 || w[1] != 0 {
		t.Errorf("NNN wrap = %v; want [1 0]", w)
	}
}

// TestAddNNNBonds_RestrictTo verifies that pairs touching a strength
// outside the restriction set are skipped.
func TestAddNNNBonds_RestrictTo(t *testing.T) {
	uc := twoSiteCell()
	uc.SetBonds([]lattice.Bond{
		{From: 1, To: 2, Strength: lattice.Symbolic("J"), Wrap: []int{0, 0}},
		{From: 1, To: 2, Strength: lattice.Symbolic("J"), Wrap: []int{1, 0}},
		{From: 1, To: 2, Strength: lattice.Symbolic("K"), Wrap: []int{0, 1}},
	})

	lattice.AddNNNBonds(uc, lattice.WithRestrictTo(lattice.Symbolic("J")))
	// Only the J/J pair qualifies: 3 arms give 3 pairs, 2 involve K.
	if got := len(uc.Bonds()); got != 5 {
		t.Errorf("bond count = %d; want 5 (one synthesized pair)", got)
	}
}

// TestAddNNNBonds_LiteralStrength verifies the literal-strength override.
func TestAddNNNBonds_LiteralStrength(t *testing.T) {
	uc := squareCell(lattice.Real(1))
	lattice.AddNNNBonds(uc, lattice.WithNNNStrength(lattice.Symbolic("J2")))
	for _, b := range uc.Bonds()[4:] {
		if !b.Strength.Equal(lattice.Symbolic("J2")) {
			t.Fatalf("NNN strength = %v; want J2", b.Strength)
		}
	}
}

// TestSquared verifies the closure: on a periodic chain with hopping t the
// squared graph carries t² second-neighbor couplings alongside the original
// arms, and the input stays untouched.
func TestSquared(t *testing.T) {
	uc := lattice.NewUnitcell([][]float64{{1}}, [][]float64{{0}}, nil)
	lattice.AddBond(uc, 1, 1, lattice.Real(2), lattice.WithWrap(1))
	before := len(uc.Bonds())

	sq := lattice.Squared(uc)
	if got := len(uc.Bonds()); got != before {
		t.Fatalf("Squared mutated its input: %d bonds; want %d", got, before)
	}

	out, ok := sq.(*lattice.Unitcell)
	if !ok {
		t.Fatalf("Squared returned %T; want *lattice.Unitcell", sq)
	}
	// Arms (+1) and (-1) compose into wraps -2, +2 (strength 4) and the
	// original +1/-1 bonds survive canonicalization.
	wantWraps := map[int]lattice.Strength{
		1:  lattice.Real(2),
		-1: lattice.Real(2),
		2:  lattice.Real(4),
		-2: lattice.Real(4),
	}
	if got := len(out.Bonds()); got != len(wantWraps) {
		t.Fatalf("squared bond count = %d; want %d", got, len(wantWraps))
	}
	for _, b := range out.Bonds() {
		want, ok := wantWraps[b.Wrap[0]]
		if !ok {
			t.Errorf("unexpected wrap %v", b.Wrap)
			continue
		}
		if !b.Strength.Equal(want) {
			t.Errorf("wrap %v strength = %v; want %v", b.Wrap, b.Strength, want)
		}
	}
}
