// Package output provides formatting for parse reports.
package output

import (
	"time"

	"github.com/logsculpt/logsculpt/pkg/logfile"
	"github.com/logsculpt/logsculpt/pkg/stats"
)

// Report is the complete output for one parsed log.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Series summarizes each metric.
	Series []SeriesSummary `json:"series"`

	// Args holds the configuration dump, if one was found.
	Args map[string]string `json:"args,omitempty"`

	// Metadata provides context about the parse.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics for one log.
type Summary struct {
	// Epochs is the number of per-epoch records.
	Epochs int `json:"epochs"`

	// Metrics is the number of distinct metric keys.
	Metrics int `json:"metrics"`

	// FirstEpoch and LastEpoch bound the record sequence.
	FirstEpoch int `json:"first_epoch"`
	LastEpoch  int `json:"last_epoch"`

	// BestEpoch is the best record per the target-metric policy.
	// Only meaningful when HasBest is true.
	BestEpoch int `json:"best_epoch,omitempty"`

	// BestMetric is the metric that drove best-epoch selection.
	BestMetric string `json:"best_metric,omitempty"`

	// HasBest reports whether a best epoch could be selected.
	HasBest bool `json:"has_best"`
}

// SeriesSummary describes one metric across the record sequence.
type SeriesSummary struct {
	Name  string  `json:"name"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// Metadata provides context about the parse run.
type Metadata struct {
	// Source is the log file that was parsed.
	Source string `json:"source"`

	// ParsedAt is when parsing happened.
	ParsedAt time.Time `json:"parsed_at"`
}

// NewReport builds a Report from a parse result.
func NewReport(result *logfile.ParseResult, source string) *Report {
	report := &Report{
		Args: result.Args,
		Metadata: Metadata{
			Source:   source,
			ParsedAt: time.Now(),
		},
		Summary: Summary{
			Epochs:  len(result.Records),
			Metrics: len(result.Keys),
		},
	}

	if len(result.Records) > 0 {
		report.Summary.FirstEpoch = result.Records[0].Epoch
		report.Summary.LastEpoch = result.Records[len(result.Records)-1].Epoch
	}
	if epoch, ok := stats.BestEpoch(result.Records, result.Keys); ok {
		report.Summary.BestEpoch = epoch
		report.Summary.BestMetric = stats.TargetMetric(result.Keys)
		report.Summary.HasBest = true
	}

	report.Series = make([]SeriesSummary, 0, len(result.Keys))
	for _, key := range result.Keys {
		min, max, ok := stats.MinMax(result.Records, key)
		if !ok {
			// String-valued metric; report presence only.
			report.Series = append(report.Series, SeriesSummary{Name: key})
			continue
		}
		count := 0
		for _, r := range result.Records {
			if _, numeric := r.Number(key); numeric {
				count++
			}
		}
		report.Series = append(report.Series, SeriesSummary{
			Name:  key,
			Min:   min,
			Max:   max,
			Mean:  stats.Mean(result.Records, key),
			Count: count,
		})
	}

	return report
}

// HasData reports whether the parse found any epoch records.
func (r *Report) HasData() bool {
	return r.Summary.Epochs > 0
}
