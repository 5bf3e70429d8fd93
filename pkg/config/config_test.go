package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/logsculpt/logsculpt/pkg/session"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edits.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeScript(t, `
edits:
  - metric: ACC
    op: generate
    from: 1
    to: 10
    start_value: 0.2
    end_value: 0.9
    easing: ease-in-out
  - metric: L_total
    op: jitter
    from: 1
    to: 10
    amplitude: 0.05
    correlation: 0.4
    seed: 777
colors:
  ACC: "#00ff00"
`)

	script, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(script.Edits) != 2 {
		t.Fatalf("got %d edits, want 2", len(script.Edits))
	}
	first := script.Edits[0]
	if first.Kind != session.OpGenerate || first.Metric != "ACC" || first.Easing != "ease-in-out" {
		t.Errorf("edits[0] = %+v", first)
	}
	if script.Edits[1].Seed != 777 {
		t.Errorf("edits[1].Seed = %d, want 777 (explicit seed kept)", script.Edits[1].Seed)
	}
}

func TestLoad_DefaultSeed(t *testing.T) {
	path := writeScript(t, `
edits:
  - metric: ACC
    op: jitter
    from: 1
    to: 5
    amplitude: 0.05
`)

	script, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if script.Edits[0].Seed != DefaultSeed {
		t.Errorf("Seed = %d, want default %d", script.Edits[0].Seed, DefaultSeed)
	}
}

func TestLoad_SeedFromEnvironment(t *testing.T) {
	t.Setenv(EnvSeed, "999")
	path := writeScript(t, `
edits:
  - metric: ACC
    op: jitter
    from: 1
    to: 5
    amplitude: 0.05
`)

	script, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if script.Edits[0].Seed != 999 {
		t.Errorf("Seed = %d, want 999 from %s", script.Edits[0].Seed, EnvSeed)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no edits", "colors: {}\n"},
		{"missing metric", "edits:\n  - op: offset\n    from: 1\n    to: 2\n"},
		{"unknown op", "edits:\n  - metric: ACC\n    op: smooth\n    from: 1\n    to: 2\n"},
		{"reversed range", "edits:\n  - metric: ACC\n    op: offset\n    from: 9\n    to: 2\n"},
		{"bad easing", "edits:\n  - metric: ACC\n    op: generate\n    from: 1\n    to: 2\n    easing: bounce\n"},
		{"bad color", "edits:\n  - metric: ACC\n    op: offset\n    from: 1\n    to: 2\ncolors:\n  ACC: green\n"},
		{"bad yaml", "edits: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScript(t, tt.content)
			if _, err := Load(context.Background(), path); err == nil {
				t.Errorf("Load() error = nil, want error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() error = nil, want error for missing file")
	}
}
