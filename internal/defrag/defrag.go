// Package defrag reassembles a string from its overlapping fragments
package defrag

// Kind is the way two or more fragments were joined in a single Step
type Kind int

const (
	// merged steps join the pair of fragments with the longest overlap
	merged Kind = 0

	// concatenated steps join every remaining fragment, in order, when none overlap
	concatenated Kind = 1
)

// String returns the name of the step kind, used in reports
func (k Kind) String() string {
	switch k {
	case merged:
		return "merge"
	case concatenated:
		return "concat"
	}
	return "unknown"
}

// MarshalText lets a Kind be written by name in JSON and YAML reports
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Step is a single iteration of reassembly
type Step struct {
	// Kind of join made in this step
	Kind Kind `json:"kind" yaml:"kind"`

	// Overlap between the pair that was merged. Empty for a concatenation
	Overlap Overlap `json:"overlap" yaml:"overlap"`

	// Merged is the fragment created by this step
	Merged string `json:"merged" yaml:"merged"`

	// Remaining is the fragment count after the step
	Remaining int `json:"remaining" yaml:"remaining"`
}
