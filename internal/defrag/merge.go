package defrag

import "strings"

// selectBestPair finds the pair of fragments with the longest overlap.
//
// Pairs are scanned with i ascending, then j ascending. The first pair is
// the starting best even if it doesn't overlap, and it's only replaced by a
// strictly longer overlap, so ties go to the pair scanned first. An empty Str
// in the result means that no pair of fragments overlaps
func selectBestPair(frags []string) (best Overlap) {
	first := true
	for i := 0; i < len(frags); i++ {
		for j := i + 1; j < len(frags); j++ {
			o := newOverlap(frags[i], frags[j], i, j)
			if first || o.Len() > best.Len() {
				best = o
				first = false
			}
		}
	}
	return best
}

// merge replaces the pair in o with their merged fragment, appended after the
// other fragments. The returned set is one shorter than frags
func merge(frags []string, o Overlap) []string {
	merged := make([]string, 0, len(frags)-1)
	for i, f := range frags {
		if i != o.I && i != o.J {
			merged = append(merged, f)
		}
	}
	return append(merged, join(o))
}

// join builds the single fragment from an overlapping pair.
//
// NOTE: when the overlap doesn't come from containment, every occurrence of it is
// removed from one side of the pair, not just the one at the junction. So an
// overlap that repeats inside that fragment is dropped more than once
func join(o Overlap) string {
	switch {
	case strings.Contains(o.A, o.B):
		return o.A
	case strings.Contains(o.B, o.A):
		return o.B
	case strings.HasPrefix(o.A, o.Str):
		return strings.ReplaceAll(o.B, o.Str, "") + o.A
	default:
		return strings.ReplaceAll(o.A, o.Str, "") + o.B
	}
}
