package lattice

import (
	"math"
	"strconv"
	"strings"
)

// Strength is the coupling carried by a Bond: either a numeric (complex)
// value or an opaque symbolic label. The two kinds are never silently
// coerced into one another; combination rules are explicit in Add and Mul.
//
// The zero value is Numeric(0).
type Strength struct {
	value    complex128
	symbol   string
	symbolic bool
}

// Numeric returns a numeric Strength holding v.
func Numeric(v complex128) Strength {
	return Strength{value: v}
}

// Real returns a numeric Strength holding the real value v.
func Real(v float64) Strength {
	return Strength{value: complex(v, 0)}
}

// Symbolic returns a symbolic Strength holding the label s.
func Symbolic(s string) Strength {
	return Strength{symbol: s, symbolic: true}
}

// IsSymbolic reports whether s carries a symbolic label.
func (s Strength) IsSymbolic() bool { return s.symbolic }

// Complex returns the raw numeric value and true when s is numeric.
// Symbolic strengths return (0, false); use Numeric for a parsing fallback.
func (s Strength) Complex() (complex128, bool) {
	if s.symbolic {
		return 0, false
	}

	return s.value, true
}

// Numeric returns the numeric value of s, parsing symbolic labels that are
// plain float or complex literals. Returns false when the label does not
// parse cleanly; such strengths stay symbolic for every numeric purpose.
func (s Strength) Numeric() (complex128, bool) {
	if !s.symbolic {
		return s.value, true
	}
	if f, err := strconv.ParseFloat(s.symbol, 64); err == nil {
		return complex(f, 0), true
	}
	if c, err := strconv.ParseComplex(s.symbol, 128); err == nil {
		return c, true
	}

	return 0, false
}

// Conj returns the complex conjugate of a numeric Strength.
// Symbolic strengths are returned unchanged.
func (s Strength) Conj() Strength {
	if s.symbolic {
		return s
	}

	return Strength{value: complex(real(s.value), -imag(s.value))}
}

// Equal reports exact equality: numeric strengths compare by value,
// symbolic ones by label. A numeric and a symbolic strength are never
// equal, even when the label would parse to the same value.
func (s Strength) Equal(o Strength) bool {
	if s.symbolic != o.symbolic {
		return false
	}
	if s.symbolic {
		return s.symbol == o.symbol
	}

	return s.value == o.value
}

// Add combines two strengths under merging: numeric values add
// arithmetically; if either side is symbolic the result is the textual
// composition "s+o".
func (s Strength) Add(o Strength) Strength {
	if !s.symbolic && !o.symbolic {
		return Strength{value: s.value + o.value}
	}

	return Symbolic(s.String() + "+" + o.String())
}

// Mul combines two strengths under composition: numeric values multiply;
// if either side is symbolic the result is the textual product "s*o".
func (s Strength) Mul(o Strength) Strength {
	if !s.symbolic && !o.symbolic {
		return Strength{value: s.value * o.value}
	}

	return Symbolic(s.String() + "*" + o.String())
}

// String renders the strength for textual composition and diagnostics.
// Real values keep a trailing ".0" on integral magnitudes ("2.0", not "2"),
// so merged labels read the same as in the source material.
func (s Strength) String() string {
	if s.symbolic {
		return s.symbol
	}
	if imag(s.value) == 0 {
		return formatReal(real(s.value))
	}

	return strconv.FormatComplex(s.value, 'g', -1, 128)
}

// formatReal renders f with a ".0" suffix when the shortest representation
// carries no fractional or exponent part.
func formatReal(f float64) string {
	out := strconv.FormatFloat(f, 'g', -1, 64)
	if !math.IsInf(f, 0) && !math.IsNaN(f) && !strings.ContainsAny(out, ".eE") {
		out += ".0"
	}

	return out
}
