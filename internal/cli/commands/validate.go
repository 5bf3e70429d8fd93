package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logsculpt/logsculpt/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <edit-script>",
		Short: "Validate a YAML edit script",
		Long: `Validate an edit script without touching any log.

Checks:
  - YAML syntax
  - Required fields per operation
  - Operation parameter ranges (easing names, correlation bounds)
  - Color hints`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", scriptPath)

	script, err := config.Load(ctx, scriptPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nEdit script valid!\n")
	fmt.Printf("  Edits: %d\n", len(script.Edits))

	fmt.Printf("\nEdits:\n")
	for i, op := range script.Edits {
		fmt.Printf("  %d. [%s] %s epochs %d..%d\n", i+1, op.Kind, op.Metric, op.StartEpoch, op.EndEpoch)
	}

	if len(script.Fields) > 0 {
		fmt.Printf("\nRewrite allow-list override: %v\n", script.Fields)
	}

	return nil
}
