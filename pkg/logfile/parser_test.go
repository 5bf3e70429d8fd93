package logfile

import (
	"reflect"
	"testing"
)

const sampleLog = `Training started
Namespace(lr=0.001, epochs=3, batch_size=32, optimizer='adam')
[METRIC] epoch=1 step=100 ACC=0.3012 L_total=5.1234
[ROUTE] epoch=1 R_left=0.2500 R_right=0.7500
[METRIC] epoch=2 step=200 ACC=0.4501 L_total=3.0211
[ROUTE] epoch=2 R_left=0.3000 R_right=0.7000
[METRIC] epoch=3 step=300 ACC=0.2799 L_total=4.2001
[ROUTE] epoch=3 R_left=0.3100 R_right=0.6900
Average over all epochs
ACC=0.3437 L_total=4.1149 R_left=0.2867 R_right=0.7133
Final Evaluation (Last Epoch)
[METRIC] epoch=3 ACC=0.2799 L_total=4.2001
Best Evaluation (Epoch 2)
[METRIC] epoch=2 ACC=0.4501 L_total=3.0211
`

func TestParse_Records(t *testing.T) {
	result := Parse(sampleLog)

	if result.Empty() {
		t.Fatal("Parse returned empty result for valid log")
	}
	if len(result.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(result.Records))
	}

	// Ascending epoch order, no duplicates.
	for i, r := range result.Records {
		if r.Epoch != i+1 {
			t.Errorf("records[%d].Epoch = %d, want %d", i, r.Epoch, i+1)
		}
	}

	// Metric and route lines for the same epoch merge into one record.
	r := result.Records[0]
	if v, ok := r.Number("ACC"); !ok || v != 0.3012 {
		t.Errorf("epoch 1 ACC = %v (ok=%v), want 0.3012", v, ok)
	}
	if v, ok := r.Number("R_left"); !ok || v != 0.25 {
		t.Errorf("epoch 1 R_left = %v (ok=%v), want 0.25", v, ok)
	}
}

func TestParse_EpochMerge(t *testing.T) {
	text := `[METRIC] epoch=3 ACC=0.1
[DIST] epoch=3 L_total=5.0
`
	result := Parse(text)

	if len(result.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(result.Records))
	}
	r := result.Records[0]
	if r.Epoch != 3 {
		t.Errorf("Epoch = %d, want 3", r.Epoch)
	}
	if v, _ := r.Number("ACC"); v != 0.1 {
		t.Errorf("ACC = %v, want 0.1", v)
	}
	if v, _ := r.Number("L_total"); v != 5.0 {
		t.Errorf("L_total = %v, want 5.0", v)
	}
}

func TestParse_LastWriteWinsPerField(t *testing.T) {
	text := `[METRIC] epoch=1 ACC=0.1 L_total=9.0
[METRIC] epoch=1 ACC=0.2
`
	result := Parse(text)

	r := result.Records[0]
	if v, _ := r.Number("ACC"); v != 0.2 {
		t.Errorf("ACC = %v, want 0.2 (later line wins)", v)
	}
	// Fields absent from the later line survive from the earlier one.
	if v, _ := r.Number("L_total"); v != 9.0 {
		t.Errorf("L_total = %v, want 9.0", v)
	}
}

func TestParse_Keys(t *testing.T) {
	result := Parse(sampleLog)

	want := []string{"ACC", "L_total", "R_left", "R_right"}
	if !reflect.DeepEqual(result.Keys, want) {
		t.Errorf("Keys = %v, want %v", result.Keys, want)
	}
}

func TestParse_Args(t *testing.T) {
	result := Parse(sampleLog)

	want := map[string]string{
		"lr":         "0.001",
		"epochs":     "3",
		"batch_size": "32",
		"optimizer":  "adam", // surrounding quotes stripped
	}
	if !reflect.DeepEqual(result.Args, want) {
		t.Errorf("Args = %v, want %v", result.Args, want)
	}
}

func TestParse_FirstArgsLineWins(t *testing.T) {
	text := `Namespace(lr=0.001)
Namespace(lr=0.999)
[METRIC] epoch=1 ACC=0.5
`
	result := Parse(text)

	if result.Args["lr"] != "0.001" {
		t.Errorf("Args[lr] = %q, want %q (first namespace line only)", result.Args["lr"], "0.001")
	}
}

func TestParse_EmptySentinel(t *testing.T) {
	result := Parse("just some text\nwith no tagged lines\n")

	if !result.Empty() {
		t.Error("Empty() = false, want true for text without tagged lines")
	}
	if len(result.Records) != 0 {
		t.Errorf("got %d records, want 0", len(result.Records))
	}
}

func TestParse_TaggedLineWithoutEpoch(t *testing.T) {
	// A tagged line lacking an epoch field contributes nothing.
	result := Parse("[METRIC] ACC=0.5 L_total=1.0\n")

	if !result.Empty() {
		t.Error("Empty() = false, want true when no tagged line carries an epoch")
	}
}
