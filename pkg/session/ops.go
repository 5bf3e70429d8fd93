// Package session holds the editing-shell state around the pure core:
// a working copy of the record sequence, the accumulated modified-fields
// allow-list, and a bounded undo/redo history of snapshots.
package session

import (
	"errors"
	"fmt"

	"github.com/logsculpt/logsculpt/pkg/signal"
)

// OpKind enumerates the signal transforms.
type OpKind string

const (
	OpGenerate OpKind = "generate"
	OpJitter   OpKind = "jitter"
	OpOffset   OpKind = "offset"
)

// EditOperation describes one signal transform over an inclusive epoch
// range. It is transient: only the values it produces are kept.
type EditOperation struct {
	// Metric is the target field name.
	Metric string `yaml:"metric" json:"metric"`

	// Kind selects the transform.
	Kind OpKind `yaml:"op" json:"op"`

	// StartEpoch and EndEpoch bound the edit, inclusive.
	StartEpoch int `yaml:"from" json:"from"`
	EndEpoch   int `yaml:"to" json:"to"`

	// StartValue and EndValue are the interpolation endpoints (generate).
	StartValue float64 `yaml:"start_value" json:"start_value,omitempty"`
	EndValue   float64 `yaml:"end_value" json:"end_value,omitempty"`

	// Easing names the interpolation shape (generate); empty means linear.
	Easing string `yaml:"easing" json:"easing,omitempty"`

	// Amplitude scales the noise (jitter).
	Amplitude float64 `yaml:"amplitude" json:"amplitude,omitempty"`

	// Correlation in [0,0.99] trades white noise for smooth drift (jitter).
	Correlation float64 `yaml:"correlation" json:"correlation,omitempty"`

	// Seed drives the reproducible noise stream (jitter).
	Seed int64 `yaml:"seed" json:"seed,omitempty"`

	// Delta is the constant added to every value in range (offset).
	Delta float64 `yaml:"delta" json:"delta,omitempty"`
}

// Validate checks the operation's shape without touching any data.
func (op *EditOperation) Validate() error {
	if op.Metric == "" {
		return errors.New("metric is required")
	}
	switch op.Kind {
	case OpGenerate:
		if _, err := signal.EasingByName(op.Easing); err != nil {
			return err
		}
	case OpJitter:
		if op.Amplitude < 0 {
			return errors.New("amplitude must be >= 0")
		}
		if op.Correlation < 0 || op.Correlation > 0.99 {
			return errors.New("correlation must be in [0, 0.99]")
		}
	case OpOffset:
		// No parameter constraints.
	case "":
		return errors.New("op is required")
	default:
		return fmt.Errorf("unknown op %q (must be %s, %s, or %s)", op.Kind, OpGenerate, OpJitter, OpOffset)
	}
	if op.EndEpoch < op.StartEpoch {
		return fmt.Errorf("epoch range [%d, %d] is reversed", op.StartEpoch, op.EndEpoch)
	}
	return nil
}
