package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/logsculpt/logsculpt/pkg/logfile"
)

// DefaultHistoryCapacity bounds the undo stack.
const DefaultHistoryCapacity = 20

// Snapshot is one complete copy of the record sequence.
type Snapshot struct {
	// ID uniquely identifies the snapshot.
	ID string

	// TakenAt is when the snapshot was pushed.
	TakenAt time.Time

	// Records is the full record sequence at that point.
	Records []logfile.Record
}

// History is an append-only snapshot stack with a bounded capacity and a
// current-index cursor. Undo moves the cursor back; a push after undo
// truncates the redo tail.
type History struct {
	snapshots []Snapshot
	cursor    int
	capacity  int
}

// NewHistory creates a history holding at most capacity snapshots.
// Non-positive capacities fall back to the default.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{cursor: -1, capacity: capacity}
}

// Push stores a deep copy of the records as the new current snapshot,
// dropping any redo tail and, at capacity, the oldest snapshot.
func (h *History) Push(records []logfile.Record) Snapshot {
	snapshot := Snapshot{
		ID:      uuid.NewString(),
		TakenAt: time.Now(),
		Records: logfile.CloneRecords(records),
	}

	h.snapshots = h.snapshots[:h.cursor+1]
	h.snapshots = append(h.snapshots, snapshot)
	if len(h.snapshots) > h.capacity {
		h.snapshots = h.snapshots[1:]
	}
	h.cursor = len(h.snapshots) - 1

	return snapshot
}

// Undo moves the cursor back one snapshot and returns a copy of it.
// ok is false when there is nothing to undo.
func (h *History) Undo() ([]logfile.Record, bool) {
	if h.cursor <= 0 {
		return nil, false
	}
	h.cursor--
	return logfile.CloneRecords(h.snapshots[h.cursor].Records), true
}

// Redo moves the cursor forward one snapshot and returns a copy of it.
// ok is false when there is nothing to redo.
func (h *History) Redo() ([]logfile.Record, bool) {
	if h.cursor >= len(h.snapshots)-1 {
		return nil, false
	}
	h.cursor++
	return logfile.CloneRecords(h.snapshots[h.cursor].Records), true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.snapshots) }

// Current returns the snapshot under the cursor. ok is false for an
// empty history.
func (h *History) Current() (Snapshot, bool) {
	if h.cursor < 0 || h.cursor >= len(h.snapshots) {
		return Snapshot{}, false
	}
	return h.snapshots[h.cursor], true
}
