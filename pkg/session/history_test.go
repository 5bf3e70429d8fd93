package session

import (
	"testing"

	"github.com/logsculpt/logsculpt/pkg/logfile"
)

func singleRecord(acc float64) []logfile.Record {
	return []logfile.Record{{
		Epoch:  1,
		Fields: map[string]logfile.Value{"ACC": logfile.NumberValue(acc)},
	}}
}

func acc(t *testing.T, records []logfile.Record) float64 {
	t.Helper()
	v, ok := records[0].Number("ACC")
	if !ok {
		t.Fatal("record lost ACC")
	}
	return v
}

func TestHistory_UndoRedo(t *testing.T) {
	h := NewHistory(0) // default capacity

	h.Push(singleRecord(0.1))
	h.Push(singleRecord(0.2))
	h.Push(singleRecord(0.3))

	records, ok := h.Undo()
	if !ok {
		t.Fatal("Undo() ok = false, want true")
	}
	if got := acc(t, records); got != 0.2 {
		t.Errorf("after undo ACC = %v, want 0.2", got)
	}

	records, ok = h.Redo()
	if !ok {
		t.Fatal("Redo() ok = false, want true")
	}
	if got := acc(t, records); got != 0.3 {
		t.Errorf("after redo ACC = %v, want 0.3", got)
	}

	if _, ok := h.Redo(); ok {
		t.Error("Redo() at top ok = true, want false")
	}
}

func TestHistory_UndoAtBottom(t *testing.T) {
	h := NewHistory(5)
	h.Push(singleRecord(0.1))

	if _, ok := h.Undo(); ok {
		t.Error("Undo() with single snapshot ok = true, want false")
	}
}

func TestHistory_PushAfterUndoTruncatesRedoTail(t *testing.T) {
	h := NewHistory(5)
	h.Push(singleRecord(0.1))
	h.Push(singleRecord(0.2))
	h.Push(singleRecord(0.3))

	if _, ok := h.Undo(); !ok {
		t.Fatal("Undo() failed")
	}
	h.Push(singleRecord(0.9))

	// Redo tail (0.3) is gone.
	if _, ok := h.Redo(); ok {
		t.Error("Redo() after push ok = true, want false")
	}
	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}

	records, _ := h.Undo()
	if got := acc(t, records); got != 0.2 {
		t.Errorf("undo below new branch ACC = %v, want 0.2", got)
	}
}

func TestHistory_CapacityDropsOldest(t *testing.T) {
	h := NewHistory(3)
	for i := 1; i <= 5; i++ {
		h.Push(singleRecord(float64(i)))
	}

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (bounded)", h.Len())
	}

	// Walking all the way back lands on the oldest retained snapshot.
	var records []logfile.Record
	for {
		r, ok := h.Undo()
		if !ok {
			break
		}
		records = r
	}
	if got := acc(t, records); got != 3 {
		t.Errorf("oldest retained ACC = %v, want 3", got)
	}
}

func TestHistory_SnapshotsAreIsolated(t *testing.T) {
	h := NewHistory(5)
	records := singleRecord(0.1)
	h.Push(records)

	// Mutating the caller's slice must not leak into the snapshot.
	records[0].Fields["ACC"] = logfile.NumberValue(0.9)

	current, ok := h.Current()
	if !ok {
		t.Fatal("Current() ok = false")
	}
	if got := acc(t, current.Records); got != 0.1 {
		t.Errorf("snapshot ACC = %v, want 0.1 (deep copy)", got)
	}
	if current.ID == "" {
		t.Error("snapshot ID is empty")
	}
}
