// Package batch reassembles every line of an input, one problem per line
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/jjtimmons/reassemble/internal/defrag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxLine is the longest input line that can be read
const maxLine = 1024 * 1024

// Options for a batch run
type Options struct {
	// Delimiter between fragments on a line
	Delimiter string

	// Workers is the max number of lines reassembled at once
	Workers int

	// Logger for per-line debug output. Optional
	Logger *zap.Logger
}

// Result is the reassembly of a single input line
type Result struct {
	// Line number, starting at 1
	Line int `json:"line" yaml:"line"`

	// Input is the line as read
	Input string `json:"input" yaml:"input"`

	// Fragments split from the line
	Fragments []string `json:"fragments" yaml:"fragments"`

	// Steps taken to reassemble the fragments
	Steps []defrag.Step `json:"steps,omitempty" yaml:"steps,omitempty"`

	// Output is the reassembled line
	Output string `json:"output" yaml:"output"`
}

// Run reads lines from r, reassembles them, and writes one output line per input
// line to w in input order.
//
// Lines are independent and are reassembled concurrently. Nothing is written if
// reading fails or ctx is cancelled before every line is done
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) ([]Result, error) {
	if opts.Delimiter == "" {
		return nil, fmt.Errorf("empty fragment delimiter")
	}
	if opts.Workers < 1 {
		opts.Workers = runtime.NumCPU()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, line := range lines {
		i, line := i, line // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Line(i+1, line, opts.Delimiter)
			logger.Debug("reassembled line",
				zap.Int("line", i+1),
				zap.Int("fragments", len(results[i].Fragments)),
				zap.Int("steps", len(results[i].Steps)),
				zap.String("output", results[i].Output))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to reassemble lines: %w", err)
	}

	bw := bufio.NewWriter(w)
	for _, res := range results {
		if _, err := fmt.Fprintln(bw, res.Output); err != nil {
			return nil, fmt.Errorf("failed to write line %d: %w", res.Line, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	return results, nil
}

// Line reassembles a single line of fragments
func Line(n int, line, delimiter string) Result {
	frags := defrag.Split(line, delimiter)
	out, steps := defrag.Trace(frags)
	return Result{
		Line:      n,
		Input:     line,
		Fragments: frags,
		Steps:     steps,
		Output:    out,
	}
}

// readLines reads every line from r, without line endings
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLine)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
