package rewrite

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/logsculpt/logsculpt/pkg/logfile"
)

var (
	// epochPattern locates the epoch token on a tagged line, the same
	// shape the parser extracts.
	epochPattern = regexp.MustCompile(`epoch=(\d+)`)

	// numericTokenPattern matches key=value tokens whose value is
	// numeric-looking. Only these are ever substituted.
	numericTokenPattern = regexp.MustCompile(`([A-Za-z0-9_]+)=([-+0-9.eE]+)`)
)

// Rewrite substitutes modified record values back into the original log
// text. fields is the allow-list of metric names permitted to change;
// everything else, including spacing, tags, and non-listed fields, passes
// through byte-for-byte. It returns the updated text and the set of
// epochs whose lines were rewritten.
//
// An empty allow-list returns the input unchanged. Epochs present in
// records but absent from the text are silently skipped; no lines are
// ever inserted.
func Rewrite(text string, records []logfile.Record, fields map[string]bool) (string, map[int]bool) {
	touched := make(map[int]bool)
	if len(fields) == 0 {
		return text, touched
	}

	byEpoch := make(map[int]logfile.Record, len(records))
	for _, r := range records {
		byEpoch[r.Epoch] = r
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !logfile.TaggedLine(line) {
			continue
		}
		m := epochPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		epoch, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		record, ok := byEpoch[epoch]
		if !ok {
			continue
		}

		updated, changed := substituteTokens(line, fields, record.Number)
		if changed {
			lines[i] = updated
			touched[epoch] = true
		}

		// Look-back heuristic: a preceding line with key=value tokens but
		// no tag marker is an untagged duplicate of this one and gets the
		// same substitution. Known to be imprecise for arbitrary text;
		// kept as-is for compatibility with existing logs.
		if i > 0 && strings.Contains(lines[i-1], "=") && !logfile.TaggedLine(lines[i-1]) {
			if prev, prevChanged := substituteTokens(lines[i-1], fields, record.Number); prevChanged {
				lines[i-1] = prev
				touched[epoch] = true
			}
		}
	}

	rewriteFooters(lines, records, fields)

	return strings.Join(lines, "\n"), touched
}

// substituteTokens rewrites every numeric key=value token on the line
// whose key is allow-listed and has a replacement value, preserving the
// original value's notation via FormatLike. Reserved fields are never
// substituted.
func substituteTokens(line string, fields map[string]bool, lookup func(key string) (float64, bool)) (string, bool) {
	matches := numericTokenPattern.FindAllStringSubmatchIndex(line, -1)
	if matches == nil {
		return line, false
	}

	var b strings.Builder
	b.Grow(len(line))
	pos := 0
	changed := false

	for _, m := range matches {
		key := line[m[2]:m[3]]
		if key == logfile.FieldEpoch || key == logfile.FieldStep || !fields[key] {
			continue
		}
		value, ok := lookup(key)
		if !ok {
			continue
		}

		valStart, valEnd := m[4], m[5]
		rendered := FormatLike(line[valStart:valEnd], value)
		if rendered == line[valStart:valEnd] {
			continue
		}
		b.WriteString(line[pos:valStart])
		b.WriteString(rendered)
		pos = valEnd
		changed = true
	}

	if !changed {
		return line, false
	}
	b.WriteString(line[pos:])
	return b.String(), true
}

// recordKeys returns the sorted union of metric names across records,
// excluding the reserved step field.
func recordKeys(records []logfile.Record) []string {
	set := make(map[string]bool)
	for _, r := range records {
		for key := range r.Fields {
			if key != logfile.FieldStep {
				set[key] = true
			}
		}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
