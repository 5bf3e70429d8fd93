// Package stats computes aggregate statistics over per-epoch metric
// records: per-key means, extrema, and best-epoch selection.
package stats

import (
	"strings"

	"github.com/logsculpt/logsculpt/pkg/logfile"
)

// accuracyKeys are the preferred best-epoch target metrics, checked in
// order against the parsed key set.
var accuracyKeys = []string{"ACC", "acc", "accuracy", "val_ACC", "val_acc"}

// lossPrefix marks a metric as a loss term, selecting minimization for
// best-epoch.
const lossPrefix = "L_"

// Mean returns the arithmetic mean of a key's numeric values across the
// sequence. Records lacking a numeric value for the key are excluded.
// An empty sample yields 0, never NaN.
func Mean(records []logfile.Record, key string) float64 {
	sum := 0.0
	count := 0
	for _, r := range records {
		if v, ok := r.Number(key); ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// Means returns the per-key means for every given key.
func Means(records []logfile.Record, keys []string) map[string]float64 {
	means := make(map[string]float64, len(keys))
	for _, key := range keys {
		means[key] = Mean(records, key)
	}
	return means
}

// MinMax returns the extremes of a key's numeric values across the
// sequence. ok is false when no record carries a numeric value for the
// key, in which case both extremes are 0.
func MinMax(records []logfile.Record, key string) (min, max float64, ok bool) {
	for _, r := range records {
		v, numeric := r.Number(key)
		if !numeric {
			continue
		}
		if !ok {
			min, max, ok = v, v, true
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, ok
}

// IsLossMetric reports whether a metric name denotes a loss term, for
// which lower values are better.
func IsLossMetric(name string) bool {
	return strings.HasPrefix(name, lossPrefix) ||
		strings.HasPrefix(strings.ToLower(name), "loss")
}

// TargetMetric picks the metric that drives best-epoch selection:
// the first accuracy-like name present in keys, else the first key.
// Returns "" for an empty key set.
func TargetMetric(keys []string) string {
	present := make(map[string]bool, len(keys))
	for _, k := range keys {
		present[k] = true
	}
	for _, k := range accuracyKeys {
		if present[k] {
			return k
		}
	}
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// BestIndex selects the best record index per the target-metric policy:
// minimum for loss metrics, maximum otherwise, first occurrence winning
// ties. ok is false when keys is empty or no record carries a numeric
// value for the target metric.
func BestIndex(records []logfile.Record, keys []string) (idx int, ok bool) {
	target := TargetMetric(keys)
	if target == "" {
		return 0, false
	}

	minimize := IsLossMetric(target)
	var best float64
	idx = -1
	for i, r := range records {
		v, numeric := r.Number(target)
		if !numeric {
			continue
		}
		if idx < 0 {
			idx, best = i, v
			continue
		}
		if (minimize && v < best) || (!minimize && v > best) {
			idx, best = i, v
		}
	}
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

// BestEpoch is BestIndex reported as an epoch number.
func BestEpoch(records []logfile.Record, keys []string) (epoch int, ok bool) {
	idx, ok := BestIndex(records, keys)
	if !ok {
		return 0, false
	}
	return records[idx].Epoch, true
}
