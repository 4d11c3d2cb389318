// Package cmd is for command line interactions with the reassemble application
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/jjtimmons/reassemble/config"
	"github.com/jjtimmons/reassemble/internal/batch"
	rio "github.com/jjtimmons/reassemble/internal/io"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// conf is loaded before any command runs
	conf *config.Config

	// logger writes to stderr, stdout is for reassembled lines
	logger = zap.NewNop()
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "reassemble [file]",
	Short: "Reassemble lines of text from their overlapping fragments",
	Long: `Reassemble each line of a file from its fragments. Fragments on a line are
separated by a delimiter (";" by default) and overlap one another.

The pair of fragments with the longest overlap is merged until a single
fragment is left. If no pair overlaps, the remaining fragments are joined in
order. Lines are read from stdin if no file (or "-") is given.`,
	Example: `  reassemble fragments.txt
  cat fragments.txt | reassemble -d "|" -o report.yaml -f yaml`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: setup,
	RunE:              runFile,
	SilenceUsage:      true,
	Version:           "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Error("reassemble failed", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the settings and builds the logger for every command
func setup(cmd *cobra.Command, args []string) (err error) {
	if conf, err = config.New(); err != nil {
		return err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if conf.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if logger, err = zc.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// runFile reassembles every line of the input file and prints the results
func runFile(cmd *cobra.Command, args []string) error {
	in := rio.Stdin
	if len(args) > 0 {
		in = args[0]
	}

	r := cmd.InOrStdin()
	if in != rio.Stdin {
		f, err := rio.Open(in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	start := time.Now()
	results, err := batch.Run(cmd.Context(), r, cmd.OutOrStdout(), batch.Options{
		Delimiter: conf.Delimiter,
		Workers:   conf.Workers,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	logger.Info("reassembled input",
		zap.String("input", in),
		zap.Int("lines", len(results)),
		zap.Duration("execution", time.Since(start)))

	if conf.Out == "" {
		return nil
	}
	return rio.Write(conf.Out, conf.Format, rio.NewOut(in, results, time.Since(start)))
}

// set flags
func init() {
	RootCmd.PersistentFlags().StringP("settings", "s", "", "YAML settings file")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log each reassembled line to stderr")
	RootCmd.PersistentFlags().StringP("delimiter", "d", ";", "delimiter between fragments on a line")
	RootCmd.PersistentFlags().IntP("workers", "w", 0, "number of lines to reassemble at once (default: number of CPUs)")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("delimiter", RootCmd.PersistentFlags().Lookup("delimiter"))
	viper.BindPFlag("workers", RootCmd.PersistentFlags().Lookup("workers"))

	// Flags for the optional report of the run
	RootCmd.Flags().StringP("out", "o", "", "output file name for a report of the run")
	RootCmd.Flags().StringP("format", "f", rio.JSON, "report format: json or yaml")
	viper.BindPFlag("out", RootCmd.Flags().Lookup("out"))
	viper.BindPFlag("format", RootCmd.Flags().Lookup("format"))
}
