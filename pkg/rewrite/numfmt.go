// Package rewrite writes modified per-epoch records back into original
// log text, preserving every byte it is not explicitly asked to change.
package rewrite

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatLike renders a value mimicking the notation of the original
// token text: exponent notation stays exponent notation (fixed 6-digit
// mantissa), decimal notation keeps the original decimal digit count,
// anything else becomes a rounded integer. This keeps an edit to one
// field from perturbing the visual precision of its neighbors.
func FormatLike(original string, v float64) string {
	if strings.ContainsAny(original, "eE") {
		return fmt.Sprintf("%.6e", v)
	}
	if dot := strings.IndexByte(original, '.'); dot >= 0 {
		decimals := len(original) - dot - 1
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}
	return strconv.Itoa(int(math.Round(v)))
}
