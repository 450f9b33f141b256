package expr

import "errors"

var (
	// ErrParse indicates input that is not a well-formed expression.
	ErrParse = errors.New("expr: parse failed")

	// ErrEval indicates a well-formed expression that cannot be folded.
	ErrEval = errors.New("expr: evaluation failed")
)
