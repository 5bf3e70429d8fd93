package logfile

import (
	"sort"
	"strings"
)

// TaggedLine reports whether a line carries one of the three tag markers
// and should be tokenized for epoch data.
func TaggedLine(line string) bool {
	return strings.Contains(line, TagMetric) ||
		strings.Contains(line, TagRoute) ||
		strings.Contains(line, TagDistribution)
}

// Parse turns full log text into structured per-epoch records plus the
// one-shot args block. It never fails: text with no recognizable data
// yields a result whose Empty method returns true.
func Parse(text string) *ParseResult {
	result := &ParseResult{
		Args: make(map[string]string),
	}

	byEpoch := make(map[int]Record)
	keySet := make(map[string]bool)
	argsSeen := false

	for _, line := range strings.Split(text, "\n") {
		if !argsSeen && strings.Contains(line, ArgsMarker) {
			result.Args = parseArgs(line)
			argsSeen = true
			continue
		}

		if !TaggedLine(line) {
			continue
		}

		tokens := Tokenize(line)
		epochVal, ok := tokens[FieldEpoch]
		if !ok || !epochVal.IsNumber {
			continue
		}
		epoch := int(epochVal.Number)

		record, ok := byEpoch[epoch]
		if !ok {
			record = Record{Epoch: epoch, Fields: make(map[string]Value)}
		}
		for key, value := range tokens {
			if key == FieldEpoch {
				continue
			}
			// Later lines for the same epoch overwrite earlier fields.
			record.Fields[key] = value
			if key != FieldStep {
				keySet[key] = true
			}
		}
		byEpoch[epoch] = record
	}

	result.Records = make([]Record, 0, len(byEpoch))
	for _, record := range byEpoch {
		result.Records = append(result.Records, record)
	}
	sort.Slice(result.Records, func(i, j int) bool {
		return result.Records[i].Epoch < result.Records[j].Epoch
	})

	result.Keys = sortedKeys(keySet)

	return result
}

// parseArgs extracts the key=value pairs from a configuration dump line.
// The payload is the substring between the namespace marker and the
// line's trailing close parenthesis, comma-space separated.
func parseArgs(line string) map[string]string {
	args := make(map[string]string)

	start := strings.Index(line, ArgsMarker)
	if start < 0 {
		return args
	}
	payload := line[start+len(ArgsMarker):]
	if end := strings.LastIndex(payload, ")"); end >= 0 {
		payload = payload[:end]
	}

	for _, piece := range strings.Split(payload, ", ") {
		key, value, ok := strings.Cut(piece, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `'"`)
		if key == "" {
			continue
		}
		args[key] = value
	}

	return args
}
