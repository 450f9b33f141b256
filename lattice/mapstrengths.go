package lattice

import (
	"fmt"
	"strings"
)

// StrengthPair is one (old, new) remapping entry for MapStrengths.
type StrengthPair struct {
	Old Strength
	New Strength
}

// MapOption configures MapStrengths via functional arguments.
type MapOption func(*mapOptions)

type mapOptions struct {
	textReplace bool
	eval        func(string) (complex128, error)
}

// WithoutTextReplace disables substring replacement inside symbolic
// strengths; only exact-match strengths are remapped.
func WithoutTextReplace() MapOption {
	return func(o *mapOptions) { o.textReplace = false }
}

// WithEvaluate enables the opt-in evaluation pass: after remapping, every
// remaining symbolic strength is handed to fn and replaced with its numeric
// result. A failure aborts MapStrengths with ErrStrengthEval.
// expr.Evaluate satisfies the hook signature.
func WithEvaluate(fn func(string) (complex128, error)) MapOption {
	return func(o *mapOptions) { o.eval = fn }
}

// MapStrengths applies the pairs to every bond strength, in slice order and
// in place. For each pair, exact-match strengths are replaced first, then
// (unless WithoutTextReplace) every symbolic strength containing the old
// value's textual form as a substring has that substring replaced by the
// new value's textual form.
//
// Pairs are applied sequentially, not atomically: a strength rewritten by
// an earlier pair is visible to later pairs, so a later pair may match text
// an earlier pair produced. This order dependency is part of the observed
// behavior; there is no fixed-point substitution semantics.
// Complexity: O(P*B) plus the evaluation pass.
func MapStrengths(c Container, pairs []StrengthPair, opts ...MapOption) error {
	o := mapOptions{textReplace: true}
	for _, opt := range opts {
		opt(&o)
	}

	bs := c.Bonds()
	for _, p := range pairs {
		oldText, newText := p.Old.String(), p.New.String()
		for i := range bs {
			if bs[i].Strength.Equal(p.Old) {
				bs[i].Strength = p.New
				continue
			}
			if !o.textReplace || !bs[i].Strength.IsSymbolic() {
				continue
			}
			if label := bs[i].Strength.symbol; strings.Contains(label, oldText) {
				bs[i].Strength = Symbolic(strings.ReplaceAll(label, oldText, newText))
			}
		}
	}

	if o.eval == nil {
		return nil
	}
	for i := range bs {
		if !bs[i].Strength.IsSymbolic() {
			continue
		}
		label := bs[i].Strength.symbol
		v, err := o.eval(label)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrStrengthEval, label, err)
		}
		bs[i].Strength = Numeric(v)
	}

	return nil
}
