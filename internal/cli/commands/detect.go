package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logsculpt/logsculpt/pkg/detect"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output     string
	SampleSize int
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <log-file>",
		Short: "Check whether a file looks like a supported training log",
		Long: `Sample the first lines of a file and report whether it carries the
tagged key=value structure logsculpt understands.

Reports the tag hit rate, the metric keys seen in the sample, the epoch
span, and whether a configuration dump line is present.

Example:
  logsculpt detect train.log
  logsculpt detect --sample 500 big_run.log.gz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", 200, "Number of lines to sample")

	return cmd
}

func runDetect(cmd *cobra.Command, path string, opts *DetectOptions) error {
	detector := detect.New(detect.WithSampleSize(opts.SampleSize))

	result, err := detector.DetectFromFile(path)
	if err != nil {
		return err
	}

	if !result.Supported() {
		ExitCode = 1
	}

	out := cmd.OutOrStdout()

	if opts.Output == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Fprintf(out, "%s\n", path)
	fmt.Fprintf(out, "  Sampled lines: %d\n", result.SampledLines)
	fmt.Fprintf(out, "  Tagged lines:  %d\n", result.TaggedLines)
	fmt.Fprintf(out, "  Epoch lines:   %d (%.0f%% of sample)\n", result.EpochLines, result.Confidence*100)
	fmt.Fprintf(out, "  Args line:     %v\n", result.HasArgs)
	if result.Supported() {
		fmt.Fprintf(out, "  Epoch span:    %d..%d\n", result.FirstEpoch, result.LastEpoch)
		fmt.Fprintf(out, "  Metrics:       %v\n", result.Keys)
		fmt.Fprintf(out, "\nSupported training log\n")
	} else {
		fmt.Fprintf(out, "\nNot a supported training log (no tagged epoch lines in sample)\n")
	}

	return nil
}
