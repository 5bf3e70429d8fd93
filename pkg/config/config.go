package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// colorPattern accepts #RGB and #RRGGBB hex colors.
var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Load reads and validates an edit script.
func Load(_ context.Context, path string) (*Script, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided script path is expected
	if err != nil {
		return nil, fmt.Errorf("reading edit script: %w", err)
	}

	script := &Script{}
	if err := yaml.Unmarshal(data, script); err != nil {
		return nil, fmt.Errorf("parsing edit script: %w", err)
	}

	script.applyDefaults()

	if err := Validate(script); err != nil {
		return nil, fmt.Errorf("validating edit script: %w", err)
	}

	return script, nil
}

// Validate checks an edit script for errors.
func Validate(script *Script) error {
	if len(script.Edits) == 0 {
		return errors.New("edits: at least one edit is required")
	}

	for i := range script.Edits {
		if err := script.Edits[i].Validate(); err != nil {
			return fmt.Errorf("edits[%d] (%s %s): %w", i, script.Edits[i].Kind, script.Edits[i].Metric, err)
		}
	}

	for metric, color := range script.Colors {
		if !colorPattern.MatchString(color) {
			return fmt.Errorf("colors[%s]: %q is not a hex color", metric, color)
		}
	}

	if script.HistoryCapacity < 0 {
		return errors.New("history_capacity must be >= 0")
	}

	return nil
}
