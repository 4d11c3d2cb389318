package cmd

import (
	"fmt"

	"github.com/jjtimmons/reassemble/internal/batch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// FragmentsCmd is for reassembling lines passed as arguments rather than in a file
var FragmentsCmd = &cobra.Command{
	Use:   "fragments [line] ... [lineN]",
	Short: "Reassemble lines given as arguments",
	Long: `Reassemble each argument as a line of delimited fragments and print the
result. With --verbose every merge is logged to stderr.`,
	Example:                    `  reassemble fragments "ABCDEF;DEFG" "ABCDEF;XYZABC"`,
	Args:                       cobra.MinimumNArgs(1),
	RunE:                       runFragments,
	SuggestionsMinimumDistance: 3,
	Aliases:                    []string{"line", "frags"},
}

// runFragments reassembles and prints each argument
func runFragments(cmd *cobra.Command, args []string) error {
	for i, line := range args {
		res := batch.Line(i+1, line, conf.Delimiter)
		for _, s := range res.Steps {
			logger.Debug("reassembly step",
				zap.Int("line", res.Line),
				zap.Stringer("kind", s.Kind),
				zap.String("overlap", s.Overlap.Str),
				zap.String("merged", s.Merged),
				zap.Int("remaining", s.Remaining))
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), res.Output); err != nil {
			return fmt.Errorf("failed to write line %d: %w", res.Line, err)
		}
	}
	return nil
}

func init() {
	RootCmd.AddCommand(FragmentsCmd)
}
