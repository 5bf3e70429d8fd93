// Package logfile provides parsing of training-run log text into
// per-epoch metric records.
package logfile

import "sort"

// Tag markers that classify a line as carrying key=value metric data.
const (
	TagMetric       = "[METRIC]"
	TagRoute        = "[ROUTE]"
	TagDistribution = "[DIST]"
)

// ArgsMarker opens the one-shot configuration dump line
// (an argparse-style "Namespace(lr=0.001, ...)" line).
const ArgsMarker = "Namespace("

// Reserved field names that never count as metric keys.
const (
	FieldEpoch = "epoch"
	FieldStep  = "step"
)

// Value is a token value: numeric if the source text parsed as a number,
// otherwise the literal string.
type Value struct {
	// Number is the parsed numeric value. Only meaningful when IsNumber is true.
	Number float64

	// Text is the raw token text. Only meaningful when IsNumber is false.
	Text string

	// IsNumber reports whether the token parsed as a number.
	IsNumber bool
}

// NumberValue returns a numeric Value.
func NumberValue(f float64) Value {
	return Value{Number: f, IsNumber: true}
}

// TextValue returns a string Value.
func TextValue(s string) Value {
	return Value{Text: s}
}

// Record holds all metric fields observed for one epoch.
type Record struct {
	// Epoch is the integer epoch index, the record's unique key.
	Epoch int

	// Fields maps metric name to value. Does not include "epoch" itself.
	Fields map[string]Value
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	fields := make(map[string]Value, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	return Record{Epoch: r.Epoch, Fields: fields}
}

// Number returns the numeric value of a field and whether it is present
// and numeric.
func (r Record) Number(key string) (float64, bool) {
	v, ok := r.Fields[key]
	if !ok || !v.IsNumber {
		return 0, false
	}
	return v.Number, true
}

// CloneRecords returns a deep copy of a record sequence.
func CloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}

// ParseResult is the structured output of parsing one log text.
type ParseResult struct {
	// Args holds the key=value pairs from the configuration dump line,
	// empty if no such line exists.
	Args map[string]string

	// Records is the per-epoch data, sorted ascending by epoch,
	// one record per epoch.
	Records []Record

	// Keys is the sorted set of all metric names observed, excluding
	// the reserved epoch and step fields.
	Keys []string
}

// Empty reports whether parsing found no epoch data. Callers must treat
// an empty result as the "no data" condition; it is not an error.
func (r *ParseResult) Empty() bool {
	return len(r.Records) == 0
}

// sortedKeys returns the map's keys in sorted order.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
