// Package cli provides the command-line interface for logsculpt.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/logsculpt/logsculpt/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logsculpt",
		Short: "Parse and reshape training-run log metrics",
		Long: `logsculpt extracts per-epoch metric series from training-run logs,
applies deterministic signal edits (interpolation, correlated noise,
offsets), and writes the edits back into the original text without
disturbing its formatting.

Typical flow:
  logsculpt detect train.log          # is this a supported log?
  logsculpt parse train.log           # inspect the extracted series
  logsculpt edit train.log --metric ACC --op offset --from 5 --to 20 --delta 0.02
  logsculpt apply train.log edits.yaml -o train_edited.log

Exit codes:
  0 - Success
  1 - No epoch data found in the input
  2 - Configuration or runtime error`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewEditCommand())
	rootCmd.AddCommand(commands.NewApplyCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
