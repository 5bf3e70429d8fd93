package output

import (
	"context"
	"fmt"
	"io"
	"sort"
)

// TextFormatter formats parse reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		fmt.Fprintf(w, "%s: %d epochs, %d metrics\n",
			report.Metadata.Source, report.Summary.Epochs, report.Summary.Metrics)
		return nil
	}

	fmt.Fprintf(w, "=== %s ===\n", report.Metadata.Source)

	if !report.HasData() {
		fmt.Fprintln(w, "No epoch data found")
		return nil
	}

	fmt.Fprintf(w, "Epochs:  %d (%d..%d)\n",
		report.Summary.Epochs, report.Summary.FirstEpoch, report.Summary.LastEpoch)
	fmt.Fprintf(w, "Metrics: %d\n", report.Summary.Metrics)
	if report.Summary.HasBest {
		fmt.Fprintf(w, "Best:    epoch %d (by %s)\n", report.Summary.BestEpoch, report.Summary.BestMetric)
	}

	fmt.Fprintln(w)
	for _, s := range report.Series {
		if s.Count == 0 {
			fmt.Fprintf(w, "  %-12s (non-numeric)\n", s.Name)
			continue
		}
		fmt.Fprintf(w, "  %-12s min=%.6g max=%.6g mean=%.6g n=%d\n",
			s.Name, s.Min, s.Max, s.Mean, s.Count)
	}

	if f.opts.Verbose && len(report.Args) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Args (%d):\n", len(report.Args))
		names := make([]string, 0, len(report.Args))
		for name := range report.Args {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %s = %s\n", name, report.Args[name])
		}
	}

	return nil
}
