package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/expr"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want complex128
	}{
		{"integer", "42", complex(42, 0)},
		{"float", "2.5", complex(2.5, 0)},
		{"precedence", "2*3+1", complex(7, 0)},
		{"precedence reversed", "1+2*3", complex(7, 0)},
		{"parentheses", "(1+2)*3", complex(9, 0)},
		{"unary minus", "-4+1", complex(-3, 0)},
		{"nested negation", "-(2-5)", complex(3, 0)},
		{"division", "7/2", complex(3.5, 0)},
		{"imaginary", "2i", complex(0, 2)},
		{"mixed complex", "1+0.5i", complex(1, 0.5)},
		{"imaginary product", "2i*2i", complex(-4, 0)},
		{"scientific", "1e2+1", complex(101, 0)},
		{"whitespace", " 2 * ( 3 + 4 ) ", complex(14, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := expr.Evaluate(tc.src)
			require.NoError(t, err)
			require.InDelta(t, real(tc.want), real(got), 1e-12)
			require.InDelta(t, imag(tc.want), imag(got), 1e-12)
		})
	}
}

func TestEvaluate_ParseErrors(t *testing.T) {
	for _, src := range []string{"", "J1", "1+", "(2", "2**3", "1 2"} {
		_, err := expr.Evaluate(src)
		require.ErrorIs(t, err, expr.ErrParse, "src=%q", src)
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	_, err := expr.Evaluate("1/0")
	require.ErrorIs(t, err, expr.ErrEval)

	_, err = expr.Evaluate("1/(2-2)")
	require.ErrorIs(t, err, expr.ErrEval)
}
