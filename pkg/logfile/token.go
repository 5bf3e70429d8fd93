package logfile

import (
	"math"
	"regexp"
	"strconv"
)

// tokenPattern matches one key=value token: an alphanumeric/underscore
// identifier, then either a numeric-looking run (digits, sign, decimal
// point, exponent characters) or a bare alphanumeric word.
var tokenPattern = regexp.MustCompile(`([A-Za-z0-9_]+)=([-+0-9.eE]+|[A-Za-z0-9_]+)`)

// Tokenize extracts all key=value tokens from one line. Values that parse
// as numbers (integer, decimal, or scientific notation) become numeric;
// anything else is kept as the literal string. Tokenize is pure and
// idempotent; it never fails.
func Tokenize(line string) map[string]Value {
	tokens := make(map[string]Value)
	for _, m := range tokenPattern.FindAllStringSubmatch(line, -1) {
		key, raw := m[1], m[2]
		if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) {
			tokens[key] = NumberValue(f)
		} else {
			tokens[key] = TextValue(raw)
		}
	}
	return tokens
}
