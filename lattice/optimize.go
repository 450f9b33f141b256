package lattice

import (
	"math/cmplx"
	"strconv"
	"strings"
)

// pruneEpsilon is the magnitude at or below which a merged numeric strength
// counts as zero and its bond is dropped.
const pruneEpsilon = 1e-18

// OptimizeConnections canonicalizes the container's bond list in place:
// bonds sharing (From, To, Wrap) are collapsed into the first occurrence by
// summing strengths (numeric strengths add arithmetically; if either side
// is symbolic the merged strength becomes the textual composition
// "existing+new"), then any bond whose final strength is numerically zero
// within pruneEpsilon is dropped. Symbolic strengths are pruned only when
// they parse cleanly to a near-zero value; an unparsable label is kept
// unconditionally.
//
// Idempotent: a second run yields the same bond set.
// Complexity: O(B) expected, O(B) memory for the grouping index.
func OptimizeConnections(c Container) {
	bs := c.Bonds()
	merged := make([]Bond, 0, len(bs))
	index := make(map[string]int, len(bs))

	for _, b := range bs {
		key := groupKey(b)
		if at, ok := index[key]; ok {
			merged[at].Strength = merged[at].Strength.Add(b.Strength)
			continue
		}
		index[key] = len(merged)
		merged = append(merged, b.clone())
	}

	kept := merged[:0]
	for _, b := range merged {
		if v, ok := b.Strength.Numeric(); ok && cmplx.Abs(v) <= pruneEpsilon {
			continue
		}
		kept = append(kept, b)
	}
	c.SetBonds(kept)
}

// groupKey encodes (From, To, Wrap) for the merge index.
func groupKey(b Bond) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(b.From))
	sb.WriteByte('>')
	sb.WriteString(strconv.Itoa(b.To))
	for _, w := range b.Wrap {
		sb.WriteByte('|')
		sb.WriteString(strconv.Itoa(w))
	}

	return sb.String()
}
