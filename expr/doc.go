// Package expr evaluates arithmetic expressions over complex numbers,
// the evaluation backend for symbolic coupling-strength replacement.
//
// What:
//
//   - Evaluate: parse-and-fold of an expression string into a complex128.
//   - Grammar: +, -, *, / with the usual precedence, parentheses, unary
//     minus, and an "i" suffix for imaginary literals ("2i", "1+0.5i").
//
// Why:
//
// Symbolic strengths carry labels like "J1" or folded sums like
// "2.0+0.5". Turning a lattice numeric (for matrix assembly, pruning)
// requires an evaluator once labels have been substituted with numbers.
//
// Errors:
//
//   - ErrParse: the input is not a well-formed expression.
//   - ErrEval: the expression parsed but cannot be folded (division by
//     zero).
package expr
