package config

import (
	"os"
	"strconv"
)

// Default values for edit scripts.
const (
	// DefaultSeed drives jitter operations that do not set their own seed.
	DefaultSeed = 12345
)

// Environment variable names.
const (
	EnvSeed = "LOGSCULPT_SEED"
)

// applyDefaults fills in per-edit defaults: jitter operations without an
// explicit seed get the default seed, overridable via LOGSCULPT_SEED.
func (s *Script) applyDefaults() {
	seed := int64(DefaultSeed)
	if v := os.Getenv(EnvSeed); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = parsed
		}
	}

	for i := range s.Edits {
		if s.Edits[i].Seed == 0 {
			s.Edits[i].Seed = seed
		}
	}
}
