package components

import "github.com/katalvlaran/lvlattice/lattice"

// Label assigns every site of c an integer component label and returns the
// assignment (entry i-1 for site i) together with the count of distinct
// labels. Labels start at 1; sites with no bonds form singleton components.
//
// Union-merge sweep: sites are visited in index order; an unassigned site
// gets a fresh label; each outgoing bond either propagates the current
// label to an unassigned target or, on a label clash, relabels every site
// of the larger label to the smaller one (full rescan per merge —
// acceptable because merges are rare relative to sites).
func Label(c lattice.Container) ([]int, int) {
	n := c.SiteCount()
	labels := make([]int, n)
	out := lattice.OutgoingBonds(c)
	next := 0

	for i := 1; i <= n; i++ {
		if labels[i-1] == 0 {
			next++
			labels[i-1] = next
		}
		for _, b := range out[i-1] {
			if b.To < 1 || b.To > n {
				continue
			}
			li, lj := labels[i-1], labels[b.To-1]
			switch {
			case lj == 0:
				labels[b.To-1] = li
			case lj != li:
				lo, hi := li, lj
				if hi < lo {
					lo, hi = hi, lo
				}
				for k := range labels {
					if labels[k] == hi {
						labels[k] = lo
					}
				}
			}
		}
	}

	distinct := make(map[int]struct{}, next)
	for _, l := range labels {
		distinct[l] = struct{}{}
	}

	return labels, len(distinct)
}
