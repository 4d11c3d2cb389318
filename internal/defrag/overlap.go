package defrag

import "strings"

// Overlap is a candidate pair of fragments and the substring they share.
// Str is empty when the pair does not overlap
type Overlap struct {
	// A is the fragment at index I
	A string `json:"a" yaml:"a"`

	// B is the fragment at index J
	B string `json:"b" yaml:"b"`

	// I is the index of A in the fragment set, always less than J
	I int `json:"i" yaml:"i"`

	// J is the index of B in the fragment set
	J int `json:"j" yaml:"j"`

	// Str is the overlapping substring
	Str string `json:"overlap" yaml:"overlap"`
}

// Len is the length of the overlapping substring
func (o Overlap) Len() int {
	return len(o.Str)
}

// newOverlap compares the fragments at i and j of a fragment set
func newOverlap(a, b string, i, j int) Overlap {
	return Overlap{
		A:   a,
		B:   b,
		I:   i,
		J:   j,
		Str: detectOverlap(a, b),
	}
}

// detectOverlap returns the substring that a and b share, or "" if they don't.
//
// Either fragment may contain the other, in which case the contained fragment is the
// overlap (a is checked first). Otherwise the longest suffix of a that's a prefix
// of b is used and, failing that, the longest suffix of b that's a prefix of a.
// Matching characters that don't reach the end of either fragment aren't an overlap
func detectOverlap(a, b string) string {
	if strings.Contains(b, a) {
		return a
	}
	if strings.Contains(a, b) {
		return b
	}
	if o := suffixPrefix(a, b); o != "" {
		return o
	}
	return suffixPrefix(b, a)
}

// suffixPrefix returns the longest suffix of a that is also a prefix of b
func suffixPrefix(a, b string) string {
	for n := min(len(a), len(b)); n > 0; n-- {
		if a[len(a)-n:] == b[:n] {
			return b[:n]
		}
	}
	return ""
}
