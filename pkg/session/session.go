package session

import (
	"fmt"
	"sort"

	"github.com/logsculpt/logsculpt/pkg/logfile"
	"github.com/logsculpt/logsculpt/pkg/signal"
)

// Session owns a working copy of a parsed record sequence and applies
// edit operations to it. It accumulates the modified-fields allow-list
// that a later rewrite is permitted to touch. Sessions are not safe for
// concurrent use; each transform call completes synchronously.
type Session struct {
	records  []logfile.Record
	keys     []string
	modified map[string]bool
	history  *History
}

// Option configures a Session.
type Option func(*Session)

// WithHistoryCapacity overrides the undo stack bound.
func WithHistoryCapacity(n int) Option {
	return func(s *Session) {
		s.history = NewHistory(n)
	}
}

// New creates a session over a parse result, taking its own deep copy of
// the records. The initial state is pushed as the first history snapshot.
func New(parsed *logfile.ParseResult, opts ...Option) *Session {
	s := &Session{
		records:  logfile.CloneRecords(parsed.Records),
		keys:     append([]string(nil), parsed.Keys...),
		modified: make(map[string]bool),
		history:  NewHistory(DefaultHistoryCapacity),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.history.Push(s.records)
	return s
}

// Records returns the current record sequence. The slice is owned by the
// session; callers that hold onto it must copy it.
func (s *Session) Records() []logfile.Record {
	return s.records
}

// Keys returns the metric key set from the original parse.
func (s *Session) Keys() []string {
	return s.keys
}

// ModifiedFields returns the sorted allow-list of fields edited so far.
func (s *Session) ModifiedFields() []string {
	fields := make([]string, 0, len(s.modified))
	for k := range s.modified {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

// ModifiedFieldSet returns the allow-list as a set, in the shape the
// rewriter consumes.
func (s *Session) ModifiedFieldSet() map[string]bool {
	set := make(map[string]bool, len(s.modified))
	for k := range s.modified {
		set[k] = true
	}
	return set
}

// Apply validates the operation, maps its epoch range onto record
// indexes, runs the transform, and pushes a history snapshot. Epoch
// bounds are clamped to the data; an operation whose range misses the
// data entirely is rejected.
func (s *Session) Apply(op EditOperation) error {
	if err := op.Validate(); err != nil {
		return fmt.Errorf("invalid %s operation: %w", op.Kind, err)
	}

	startIdx, endIdx, ok := s.indexRange(op.StartEpoch, op.EndEpoch)
	if !ok {
		return fmt.Errorf("epoch range [%d, %d] matches no records", op.StartEpoch, op.EndEpoch)
	}

	switch op.Kind {
	case OpGenerate:
		ease, err := signal.EasingByName(op.Easing)
		if err != nil {
			return err
		}
		signal.Generate(s.records, op.Metric, startIdx, endIdx, op.StartValue, op.EndValue, ease)
	case OpJitter:
		signal.Jitter(s.records, op.Metric, startIdx, endIdx, op.Amplitude, op.Correlation, op.Seed)
	case OpOffset:
		signal.Offset(s.records, op.Metric, startIdx, endIdx, op.Delta)
	}

	s.modified[op.Metric] = true
	s.history.Push(s.records)
	return nil
}

// Undo restores the previous snapshot. ok is false at the bottom of the
// history.
func (s *Session) Undo() bool {
	records, ok := s.history.Undo()
	if ok {
		s.records = records
	}
	return ok
}

// Redo restores the next snapshot. ok is false at the top of the history.
func (s *Session) Redo() bool {
	records, ok := s.history.Redo()
	if ok {
		s.records = records
	}
	return ok
}

// indexRange maps an inclusive epoch range onto record indexes, clamping
// to the records that exist. ok is false when no record falls in range.
func (s *Session) indexRange(startEpoch, endEpoch int) (startIdx, endIdx int, ok bool) {
	startIdx, endIdx = -1, -1
	for i, r := range s.records {
		if r.Epoch < startEpoch || r.Epoch > endEpoch {
			continue
		}
		if startIdx < 0 {
			startIdx = i
		}
		endIdx = i
	}
	if startIdx < 0 {
		return 0, 0, false
	}
	return startIdx, endIdx, true
}
