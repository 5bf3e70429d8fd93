package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logsculpt/logsculpt/pkg/config"
)

// ApplyOptions holds command-line options for the apply command.
type ApplyOptions struct {
	Out     string
	InPlace bool
}

// NewApplyCommand creates the apply command.
func NewApplyCommand() *cobra.Command {
	opts := &ApplyOptions{}

	cmd := &cobra.Command{
		Use:   "apply <log-file> <edit-script>",
		Short: "Apply a YAML edit script to a training log",
		Long: `Apply every edit in a YAML script to the log, in order, then rewrite
the log with the modified series.

An edit script looks like:

  edits:
    - metric: ACC
      op: generate
      from: 10
      to: 50
      start_value: 0.55
      end_value: 0.91
      easing: ease-in-out
    - metric: L_total
      op: jitter
      from: 1
      to: 50
      amplitude: 0.05
      correlation: 0.4
      seed: 12345

Output goes to stdout unless --out or --in-place is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Write the rewritten log to this file")
	cmd.Flags().BoolVar(&opts.InPlace, "in-place", false, "Rewrite the input file in place")

	return cmd
}

func runApply(cmd *cobra.Command, args []string, opts *ApplyOptions) error {
	logPath, scriptPath := args[0], args[1]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	script, err := config.Load(ctx, scriptPath)
	if err != nil {
		return fmt.Errorf("loading edit script: %w", err)
	}

	return runEdits(logPath, script.Edits, script.Fields, opts.Out, opts.InPlace, script.HistoryCapacity)
}
