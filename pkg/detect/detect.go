// Package detect samples log files to decide whether they look like
// supported training-run logs, before a full parse is attempted.
package detect

import (
	"sort"
	"strings"

	"github.com/logsculpt/logsculpt/pkg/logfile"
)

// Result holds the outcome of sampling one file.
type Result struct {
	// SampledLines is the number of non-blank lines examined.
	SampledLines int

	// TaggedLines is how many sampled lines carried a tag marker.
	TaggedLines int

	// EpochLines is how many tagged lines carried a parsable epoch field.
	EpochLines int

	// Confidence is EpochLines / SampledLines, in [0,1].
	Confidence float64

	// HasArgs reports whether a configuration dump line was seen.
	HasArgs bool

	// Keys lists the metric names observed in the sample, sorted.
	Keys []string

	// FirstEpoch and LastEpoch bound the epochs seen in the sample.
	// Only meaningful when EpochLines > 0.
	FirstEpoch int
	LastEpoch  int
}

// Supported reports whether the sample looks like a training log worth
// parsing in full: at least one tagged line with an epoch.
func (r *Result) Supported() bool {
	return r.EpochLines > 0
}

// Detector samples log text for tag markers.
type Detector struct {
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 200).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a Detector.
func New(opts ...Option) *Detector {
	d := &Detector{sampleSize: 200}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile samples a log file (plain or gzip) from the top.
func (d *Detector) DetectFromFile(path string) (*Result, error) {
	text, err := logfile.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return d.DetectFromText(text), nil
}

// DetectFromText samples the first lines of the given text.
func (d *Detector) DetectFromText(text string) *Result {
	result := &Result{}
	keySet := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if result.SampledLines >= d.sampleSize {
			break
		}
		result.SampledLines++

		if strings.Contains(line, logfile.ArgsMarker) {
			result.HasArgs = true
			continue
		}
		if !logfile.TaggedLine(line) {
			continue
		}
		result.TaggedLines++

		tokens := logfile.Tokenize(line)
		epochVal, ok := tokens[logfile.FieldEpoch]
		if !ok || !epochVal.IsNumber {
			continue
		}
		epoch := int(epochVal.Number)

		if result.EpochLines == 0 || epoch < result.FirstEpoch {
			result.FirstEpoch = epoch
		}
		if result.EpochLines == 0 || epoch > result.LastEpoch {
			result.LastEpoch = epoch
		}
		result.EpochLines++

		for key := range tokens {
			if key != logfile.FieldEpoch && key != logfile.FieldStep {
				keySet[key] = true
			}
		}
	}

	if result.SampledLines > 0 {
		result.Confidence = float64(result.EpochLines) / float64(result.SampledLines)
	}
	result.Keys = sortedKeys(keySet)

	return result
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
