package rewrite

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/logsculpt/logsculpt/pkg/logfile"
	"github.com/logsculpt/logsculpt/pkg/stats"
)

// Footer marker phrases. Each marker line is followed by a metrics line
// that carries the corresponding aggregate.
const (
	MarkerAverage = "Average over all epochs"
	MarkerFinal   = "Final Evaluation (Last Epoch)"
	MarkerBest    = "Best Evaluation (Epoch"
)

// bestMarkerEpoch locates the epoch number embedded in the best-epoch
// marker line.
var bestMarkerEpoch = regexp.MustCompile(`Epoch (\d+)`)

// rewriteFooters recomputes the three aggregate footer sections from the
// modified record sequence and rewrites the line following each marker.
// Substitution stays within the allow-list so untouched metrics keep
// their original bytes.
func rewriteFooters(lines []string, records []logfile.Record, fields map[string]bool) {
	keys := recordKeys(records)

	for i, line := range lines {
		next := i + 1
		switch {
		case strings.Contains(line, MarkerAverage):
			if next >= len(lines) {
				continue
			}
			means := stats.Means(records, keys)
			lines[next], _ = substituteTokens(lines[next], fields, func(key string) (float64, bool) {
				// Mean over an empty sample is defined as 0.
				v, ok := means[key]
				return v, ok
			})

		case strings.Contains(line, MarkerFinal):
			if next >= len(lines) || len(records) == 0 {
				continue
			}
			last := records[len(records)-1]
			lines[next], _ = substituteTokens(lines[next], fields, last.Number)

		case strings.Contains(line, MarkerBest):
			idx, ok := stats.BestIndex(records, keys)
			if !ok {
				continue
			}
			best := records[idx]
			lines[i] = bestMarkerEpoch.ReplaceAllString(line, "Epoch "+strconv.Itoa(best.Epoch))
			if next < len(lines) {
				// Keep the metrics line's own epoch token in step with the
				// marker so a re-parse attributes the values correctly.
				lines[next] = epochPattern.ReplaceAllString(lines[next], "epoch="+strconv.Itoa(best.Epoch))
				lines[next], _ = substituteTokens(lines[next], fields, best.Number)
			}
		}
	}
}
