package lattice

import "errors"

// Sentinel errors for the lattice package.
var (
	// ErrStrengthEval indicates a symbolic strength could not be evaluated
	// by the hook supplied via WithEvaluate. Distinguished from "not a
	// float, kept as symbolic", which is never an error.
	ErrStrengthEval = errors.New("lattice: symbolic strength evaluation failed")
)
