package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/logsculpt/logsculpt/pkg/logfile"
)

const reportLog = `Namespace(lr=0.001, epochs=3)
[METRIC] epoch=1 ACC=0.30 L_total=5.0
[METRIC] epoch=2 ACC=0.45 L_total=3.0
[METRIC] epoch=3 ACC=0.27 L_total=4.0
`

func buildReport(t *testing.T) *Report {
	t.Helper()
	return NewReport(logfile.Parse(reportLog), "train.log")
}

func TestNewReport(t *testing.T) {
	report := buildReport(t)

	if !report.HasData() {
		t.Fatal("HasData() = false, want true")
	}
	if report.Summary.Epochs != 3 {
		t.Errorf("Epochs = %d, want 3", report.Summary.Epochs)
	}
	if report.Summary.FirstEpoch != 1 || report.Summary.LastEpoch != 3 {
		t.Errorf("epoch span = %d..%d, want 1..3",
			report.Summary.FirstEpoch, report.Summary.LastEpoch)
	}
	if !report.Summary.HasBest || report.Summary.BestEpoch != 2 || report.Summary.BestMetric != "ACC" {
		t.Errorf("best = epoch %d by %q (has=%v), want epoch 2 by ACC",
			report.Summary.BestEpoch, report.Summary.BestMetric, report.Summary.HasBest)
	}
	if len(report.Series) != 2 {
		t.Fatalf("got %d series, want 2", len(report.Series))
	}
	acc := report.Series[0]
	if acc.Name != "ACC" || acc.Min != 0.27 || acc.Max != 0.45 || acc.Count != 3 {
		t.Errorf("ACC series = %+v", acc)
	}
}

func TestNewReport_Empty(t *testing.T) {
	report := NewReport(logfile.Parse("nothing here\n"), "empty.log")

	if report.HasData() {
		t.Error("HasData() = true, want false")
	}
	if report.Summary.HasBest {
		t.Error("HasBest = true, want false for empty data")
	}
}

func TestTextFormatter(t *testing.T) {
	report := buildReport(t)

	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{Verbose: true})
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Epochs:  3 (1..3)",
		"Best:    epoch 2 (by ACC)",
		"ACC",
		"L_total",
		"lr = 0.001",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestTextFormatter_Quiet(t *testing.T) {
	report := buildReport(t)

	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{Quiet: true})
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if got := buf.String(); got != "train.log: 3 epochs, 2 metrics\n" {
		t.Errorf("quiet output = %q", got)
	}
}

func TestJSONFormatter(t *testing.T) {
	report := buildReport(t)

	var buf bytes.Buffer
	f := NewJSONFormatter(FormatOptions{})
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Summary.Epochs != 3 {
		t.Errorf("decoded Epochs = %d, want 3", decoded.Summary.Epochs)
	}
	if decoded.Args["lr"] != "0.001" {
		t.Errorf("decoded Args = %v", decoded.Args)
	}
}

func TestByName(t *testing.T) {
	if f, ok := ByName("text", FormatOptions{}); !ok || f.Name() != "text" {
		t.Errorf("ByName(text) = %v, %v", f, ok)
	}
	if f, ok := ByName("json", FormatOptions{}); !ok || f.Name() != "json" {
		t.Errorf("ByName(json) = %v, %v", f, ok)
	}
	if _, ok := ByName("xml", FormatOptions{}); ok {
		t.Error("ByName(xml) ok = true, want false")
	}
}
