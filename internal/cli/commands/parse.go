package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/logsculpt/logsculpt/pkg/logfile"
	"github.com/logsculpt/logsculpt/pkg/output"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ParseOptions holds command-line options for the parse command.
type ParseOptions struct {
	Output  string
	Verbose bool
	Quiet   bool
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <log-file>...",
		Short: "Extract per-epoch metric series from training logs",
		Long: `Parse training-run log files and report the extracted series.

For each file, reports the epoch span, the metric key set, per-metric
statistics, the best epoch, and (with --verbose) the configuration
arguments found in the log.

Accepts multiple files and glob patterns. Gzip-compressed logs (.gz)
are read transparently.

Exit codes:
  0 - All files yielded epoch data
  1 - At least one file yielded no epoch data
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include the parsed args block")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no per-metric detail")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	formatter, ok := output.ByName(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if !ok {
		return fmt.Errorf("unknown output format %q (must be text or json)", opts.Output)
	}

	files, err := logfile.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding log paths: %w", err)
	}

	ExitCode = 0
	for _, path := range files {
		text, err := logfile.ReadFile(path)
		if err != nil {
			return err
		}

		result := logfile.Parse(text)
		report := output.NewReport(result, path)
		if err := formatter.Format(ctx, report, os.Stdout); err != nil {
			return fmt.Errorf("formatting report for %s: %w", path, err)
		}

		if result.Empty() {
			fmt.Fprintf(os.Stderr, "Warning: %s contains no epoch data\n", path)
			ExitCode = 1
		}
	}

	return nil
}
