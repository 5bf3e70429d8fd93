// Package config loads and validates YAML edit scripts.
package config

import "github.com/logsculpt/logsculpt/pkg/session"

// Script is a user-authored edit script: an ordered list of signal
// transforms plus optional output settings.
type Script struct {
	// Edits are applied to the parsed record sequence in order.
	Edits []session.EditOperation `yaml:"edits"`

	// Fields optionally overrides the rewrite allow-list. When empty,
	// the allow-list is the set of metrics the edits touched.
	Fields []string `yaml:"fields,omitempty"`

	// Colors maps metric name to a display color hint, passed through to
	// the charting boundary.
	Colors map[string]string `yaml:"colors,omitempty"`

	// HistoryCapacity bounds the session undo stack. Zero means the
	// session default.
	HistoryCapacity int `yaml:"history_capacity,omitempty"`
}
