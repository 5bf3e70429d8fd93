// Package render prepares parsed records for the charting layer: ordered
// per-metric point series with optional display colors. Drawing itself
// happens elsewhere; this package only shapes the data.
package render

import "github.com/logsculpt/logsculpt/pkg/logfile"

// Point is one chart sample.
type Point struct {
	Epoch int     `json:"epoch"`
	Value float64 `json:"value"`
}

// Series is one metric's ordered samples.
type Series struct {
	// Name is the metric name.
	Name string `json:"name"`

	// Color is an optional display color hint, empty when unset.
	Color string `json:"color,omitempty"`

	// Points are the samples in ascending epoch order. Epochs where the
	// metric is absent or non-numeric are simply missing.
	Points []Point `json:"points"`
}

// BuildSeries extracts one series per requested key. Keys with no
// numeric samples anywhere in the data are omitted entirely, so callers
// degrade gracefully when asked for metrics the log never carried.
func BuildSeries(records []logfile.Record, keys []string, colors map[string]string) []Series {
	out := make([]Series, 0, len(keys))
	for _, key := range keys {
		points := make([]Point, 0, len(records))
		for _, r := range records {
			if v, ok := r.Number(key); ok {
				points = append(points, Point{Epoch: r.Epoch, Value: v})
			}
		}
		if len(points) == 0 {
			continue
		}
		out = append(out, Series{
			Name:   key,
			Color:  colors[key],
			Points: points,
		})
	}
	return out
}
