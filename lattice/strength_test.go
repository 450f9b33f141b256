package lattice_test

import (
	"testing"

	"github.com/katalvlaran/lvlattice/lattice"
)

// TestStrength_AddNumeric verifies arithmetic addition of numeric strengths.
func TestStrength_AddNumeric(t *testing.T) {
	got := lattice.Real(2).Add(lattice.Real(3))
	if !got.Equal(lattice.Real(5)) {
		t.Errorf("Real(2)+Real(3) = %v; want 5.0", got)
	}
	if got.IsSymbolic() {
		t.Error("numeric+numeric must stay numeric")
	}
}

// TestStrength_AddMixed verifies textual composition when a symbolic side
// is involved: numeric 2.0 + symbolic x must read "2.0+x".
func TestStrength_AddMixed(t *testing.T) {
	cases := []struct {
		name string
		a, b lattice.Strength
		want string
	}{
		{"NumericPlusSymbol", lattice.Real(2), lattice.Symbolic("x"), "2.0+x"},
		{"SymbolPlusNumeric", lattice.Symbolic("x"), lattice.Real(2), "x+2.0"},
		{"SymbolPlusSymbol", lattice.Symbolic("J1"), lattice.Symbolic("J2"), "J1+J2"},
		{"FractionalNumeric", lattice.Real(1.5), lattice.Symbolic("x"), "1.5+x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Add(tc.b)
			if !got.IsSymbolic() || got.String() != tc.want {
				t.Errorf("%v + %v = %q; want symbolic %q", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

// TestStrength_Mul verifies numeric products and textual products.
func TestStrength_Mul(t *testing.T) {
	if got := lattice.Real(2).Mul(lattice.Real(4)); !got.Equal(lattice.Real(8)) {
		t.Errorf("2*4 = %v; want 8.0", got)
	}
	if got := lattice.Symbolic("J").Mul(lattice.Real(2)); got.String() != "J*2.0" {
		t.Errorf("J*2.0 composition = %q; want %q", got, "J*2.0")
	}
}

// TestStrength_Conj verifies conjugation of complex strengths and the
// pass-through for symbolic ones.
func TestStrength_Conj(t *testing.T) {
	c := lattice.Numeric(complex(1, 2)).Conj()
	if v, ok := c.Complex(); !ok || v != complex(1, -2) {
		t.Errorf("Conj(1+2i) = %v; want 1-2i", v)
	}
	s := lattice.Symbolic("J").Conj()
	if !s.Equal(lattice.Symbolic("J")) {
		t.Errorf("Conj(J) = %v; want J unchanged", s)
	}
}

// TestStrength_EqualNeverCoerces verifies that a numeric strength and a
// symbolic label with the same textual value are not equal.
func TestStrength_EqualNeverCoerces(t *testing.T) {
	if lattice.Real(2).Equal(lattice.Symbolic("2.0")) {
		t.Error("Real(2) must not equal Symbolic(\"2.0\")")
	}
}

// TestStrength_NumericParsesLabels verifies the parsing fallback used by
// pruning and matrix assembly.
func TestStrength_NumericParsesLabels(t *testing.T) {
	cases := []struct {
		label string
		want  complex128
		ok    bool
	}{
		{"1.5", complex(1.5, 0), true},
		{"1e-20", complex(1e-20, 0), true},
		{"J1", 0, false},
		{"2.0+x", 0, false},
	}
	for _, tc := range cases {
		v, ok := lattice.Symbolic(tc.label).Numeric()
		if ok != tc.ok || (ok && v != tc.want) {
			t.Errorf("Symbolic(%q).Numeric() = (%v, %v); want (%v, %v)", tc.label, v, ok, tc.want, tc.ok)
		}
	}
}
