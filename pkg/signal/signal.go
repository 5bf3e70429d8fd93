package signal

import (
	"math"

	"github.com/logsculpt/logsculpt/pkg/logfile"
)

// Round quantizes a value to 6 decimal digits, bounding floating-point
// drift across repeated edits.
func Round(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// Generate overwrites records[startIdx..endIdx] (inclusive) for the given
// key with values interpolated from startVal to endVal under the easing
// function. Prior values are ignored. A range with endIdx <= startIdx is
// a no-op.
func Generate(records []logfile.Record, key string, startIdx, endIdx int, startVal, endVal float64, ease Easing) {
	if endIdx <= startIdx || !validRange(records, startIdx, endIdx) {
		return
	}
	if ease == nil {
		ease = Linear
	}

	span := float64(endIdx - startIdx)
	for i := startIdx; i <= endIdx; i++ {
		t := float64(i-startIdx) / span
		value := startVal + (endVal-startVal)*ease(t)
		records[i].Fields[key] = logfile.NumberValue(Round(value))
	}
}

// Jitter adds seeded pseudo-random noise to records[startIdx..endIdx]
// (inclusive) for the given key. corr in [0,0.99] trades white noise for
// smooth drift via an AR(1) recurrence whose state starts at zero and
// lives only for this invocation. Records lacking a numeric value for the
// key are skipped, but still consume their noise draw so that the output
// stays deterministic for a given input shape.
func Jitter(records []logfile.Record, key string, startIdx, endIdx int, amplitude, corr float64, seed int64) {
	if endIdx <= startIdx || !validRange(records, startIdx, endIdx) {
		return
	}
	corr = clamp(corr, 0, 0.99)

	src := newNoiseSource(seed)
	prev := 0.0
	for i := startIdx; i <= endIdx; i++ {
		white := src.gaussian()
		noise := corr*prev + (1-corr)*white
		prev = noise

		base, ok := records[i].Number(key)
		if !ok {
			continue
		}
		records[i].Fields[key] = logfile.NumberValue(Round(base + noise*amplitude))
	}
}

// Offset adds a constant to records[startIdx..endIdx] (inclusive) for the
// given key. Records lacking a numeric value for the key are skipped.
func Offset(records []logfile.Record, key string, startIdx, endIdx int, delta float64) {
	if endIdx <= startIdx || !validRange(records, startIdx, endIdx) {
		return
	}
	for i := startIdx; i <= endIdx; i++ {
		base, ok := records[i].Number(key)
		if !ok {
			continue
		}
		records[i].Fields[key] = logfile.NumberValue(Round(base + delta))
	}
}

func validRange(records []logfile.Record, startIdx, endIdx int) bool {
	return startIdx >= 0 && endIdx < len(records)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
