package io

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jjtimmons/reassemble/internal/batch"
	"gopkg.in/yaml.v3"
)

// Solution is the report entry for one reassembled line
type Solution struct {
	// Line number in the input file
	Line int `json:"line" yaml:"line"`

	// Count is the number of fragments on the line
	Count int `json:"count" yaml:"count"`

	// Merges is the number of steps to reassemble the fragments
	Merges int `json:"merges" yaml:"merges"`

	// Fragments on the line
	Fragments []string `json:"fragments" yaml:"fragments"`

	// Output is the reassembled line
	Output string `json:"output" yaml:"output"`
}

// Out is the report written after a run
type Out struct {
	// Input file name, "-" for stdin
	Input string `json:"input" yaml:"input"`

	// local time, ex:
	// "2006-01-02 15:04:05.999999999 -0700 MST"
	// https://golang.org/pkg/time/#Time.String
	Time string `json:"time" yaml:"time"`

	// Execution is the number of seconds it took to reassemble the input
	Execution float64 `json:"execution" yaml:"execution"`

	// Solutions, one per input line
	Solutions []Solution `json:"solutions" yaml:"solutions"`
}

// Formats that a report can be written in
const (
	JSON = "json"
	YAML = "yaml"
)

// NewOut summarizes the results of a run
func NewOut(input string, results []batch.Result, execution time.Duration) Out {
	solutions := make([]Solution, 0, len(results))
	for _, res := range results {
		solutions = append(solutions, Solution{
			Line:      res.Line,
			Count:     len(res.Fragments),
			Merges:    len(res.Steps),
			Fragments: res.Fragments,
			Output:    res.Output,
		})
	}

	return Out{
		Input:     input,
		Time:      time.Now().String(),
		Execution: execution.Seconds(),
		Solutions: solutions,
	}
}

// Write a report to the fs at filename, as JSON or YAML
func Write(filename, format string, out Out) error {
	var (
		output []byte
		err    error
	)

	switch strings.ToLower(format) {
	case JSON:
		output, err = json.MarshalIndent(out, "", "  ")
	case YAML:
		output, err = yaml.Marshal(out)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return fmt.Errorf("failed to write the output: %w", err)
	}
	return nil
}
