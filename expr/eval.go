package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// exprLexer tokenizes arithmetic input. A trailing "i" marks an imaginary
// literal; everything else is operator punctuation.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?([eE][-+]?[0-9]+)?i?`},
	{Name: "Punct", Pattern: `[-+*/()]`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Grammar: expression -> term (('+'|'-') term)*, term -> factor
// (('*'|'/') factor)*, factor -> '-'? (Number | '(' expression ')').

type expression struct {
	Left  *term     `parser:"@@"`
	Right []*opTerm `parser:"@@*"`
}

type opTerm struct {
	Op   string `parser:"@('+' | '-')"`
	Term *term  `parser:"@@"`
}

type term struct {
	Left  *factor     `parser:"@@"`
	Right []*opFactor `parser:"@@*"`
}

type opFactor struct {
	Op     string  `parser:"@('*' | '/')"`
	Factor *factor `parser:"@@"`
}

type factor struct {
	Neg    bool        `parser:"@'-'?"`
	Number *string     `parser:"( @Number"`
	Sub    *expression `parser:"| '(' @@ ')' )"`
}

var exprParser = participle.MustBuild[expression](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
)

// Evaluate parses src and folds it to a complex value.
// Returns ErrParse for malformed input and ErrEval for division by zero.
// Complexity: O(len(src)).
func Evaluate(src string) (complex128, error) {
	ast, err := exprParser.ParseString("", src)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrParse, src, err)
	}

	return ast.value()
}

func (e *expression) value() (complex128, error) {
	v, err := e.Left.value()
	if err != nil {
		return 0, err
	}
	for _, op := range e.Right {
		r, err := op.Term.value()
		if err != nil {
			return 0, err
		}
		if op.Op == "+" {
			v += r
		} else {
			v -= r
		}
	}

	return v, nil
}

func (t *term) value() (complex128, error) {
	v, err := t.Left.value()
	if err != nil {
		return 0, err
	}
	for _, op := range t.Right {
		r, err := op.Factor.value()
		if err != nil {
			return 0, err
		}
		if op.Op == "*" {
			v *= r
		} else {
			if r == 0 {
				return 0, fmt.Errorf("%w: division by zero", ErrEval)
			}
			v /= r
		}
	}

	return v, nil
}

func (f *factor) value() (complex128, error) {
	var v complex128
	switch {
	case f.Number != nil:
		lit := *f.Number
		imaginary := strings.HasSuffix(lit, "i")
		if imaginary {
			lit = strings.TrimSuffix(lit, "i")
		}
		r, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: bad number %q", ErrParse, *f.Number)
		}
		if imaginary {
			v = complex(0, r)
		} else {
			v = complex(r, 0)
		}
	case f.Sub != nil:
		var err error
		v, err = f.Sub.value()
		if err != nil {
			return 0, err
		}
	}
	if f.Neg {
		v = -v
	}

	return v, nil
}
