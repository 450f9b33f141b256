package lattice

// Neighbor is one entry of a per-site neighbor list: the target site and
// the coupling strength of the connecting bond.
type Neighbor struct {
	Site     int
	Strength Strength
}

// OutgoingBonds returns the per-site outgoing-bond lists: entry i-1 holds
// deep copies of all bonds with From == i, in bond-list order. Bonds whose
// From index falls outside [1, SiteCount] are ignored.
// Complexity: O(N + B).
func OutgoingBonds(c Container) [][]Bond {
	out := make([][]Bond, c.SiteCount())
	for _, b := range c.Bonds() {
		if b.From < 1 || b.From > len(out) {
			continue
		}
		out[b.From-1] = append(out[b.From-1], b.clone())
	}

	return out
}

// NeighborLists returns the per-site (neighbor, strength) lists derived
// from the outgoing bonds, in bond-list order. Consumed by rendering.
// Complexity: O(N + B).
func NeighborLists(c Container) [][]Neighbor {
	out := make([][]Neighbor, c.SiteCount())
	for _, b := range c.Bonds() {
		if b.From < 1 || b.From > len(out) {
			continue
		}
		out[b.From-1] = append(out[b.From-1], Neighbor{Site: b.To, Strength: b.Strength})
	}

	return out
}

// StrengthList enumerates the distinct strengths present in the bond list,
// in first-seen order. Numeric and symbolic strengths are distinct kinds
// even when the label would parse to the same value. Rendering uses this
// view to assign one color per coupling.
// Complexity: O(B).
func StrengthList(c Container) []Strength {
	var out []Strength
	seen := make(map[string]struct{})
	for _, b := range c.Bonds() {
		key := strengthKey(b.Strength)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, b.Strength)
	}

	return out
}

// MissingReverseBonds is the advisory diagnostic for the reverse-bond
// invariant: it returns a copy of every bond (i,j,s,w) whose reverse
// (j,i,conj(s),-w) is absent from the bond list. An empty result means the
// container is symmetric. Directed-only bond sets are legal; this check
// never mutates anything.
// Complexity: O(B) expected.
func MissingReverseBonds(c Container) []Bond {
	bs := c.Bonds()
	present := make(map[string]struct{}, len(bs))
	for _, b := range bs {
		present[bondKey(b)] = struct{}{}
	}

	var missing []Bond
	for _, b := range bs {
		if _, ok := present[bondKey(b.Reverse())]; !ok {
			missing = append(missing, b.clone())
		}
	}

	return missing
}

// strengthKey encodes a strength with its kind tag for de-duplication.
func strengthKey(s Strength) string {
	if s.IsSymbolic() {
		return "s:" + s.symbol
	}

	return "n:" + s.String()
}

// bondKey encodes a full bond (endpoints, strength, wrap) for set lookups.
func bondKey(b Bond) string {
	return groupKey(b) + "#" + strengthKey(b.Strength)
}
