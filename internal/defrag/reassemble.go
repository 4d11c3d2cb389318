package defrag

import "strings"

// Split a line into its fragments. Empty fragments, from an empty line or
// repeated/trailing separators, are dropped
func Split(line, sep string) []string {
	var frags []string
	for _, f := range strings.Split(line, sep) {
		if f != "" {
			frags = append(frags, f)
		}
	}
	return frags
}

// Reassemble fragments into the single string they were cut from.
// An empty fragment set reassembles to ""
func Reassemble(frags []string) string {
	out, _ := Trace(frags)
	return out
}

// Trace reassembles fragments and returns each step taken to do it.
//
// The pair with the longest overlap is merged until one fragment remains. If
// no pair overlaps, every remaining fragment is concatenated in its current order.
// frags is not modified
func Trace(frags []string) (string, []Step) {
	if len(frags) == 0 {
		return "", nil
	}

	var steps []Step
	set := append([]string(nil), frags...)
	for len(set) > 1 {
		best := selectBestPair(set)
		if best.Str == "" {
			set = []string{strings.Join(set, "")}
			steps = append(steps, Step{
				Kind:      concatenated,
				Merged:    set[0],
				Remaining: 1,
			})
			break
		}

		set = merge(set, best)
		steps = append(steps, Step{
			Kind:      merged,
			Overlap:   best,
			Merged:    set[len(set)-1],
			Remaining: len(set),
		})
	}

	return set[0], steps
}
