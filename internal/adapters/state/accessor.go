// Package state implements the state access protocol: capturing and
// restoring the externally visible state of target objects.
package state

import (
	"reflect"

	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"github.com/tpvasconcelos/maurice/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StateAccessor = (*Accessor)(nil)

// Accessor selects one of three state capabilities per target, in priority
// order: explicit accessor pair, mutable field mapping, registered slots.
type Accessor struct{}

// New creates a new Accessor.
func New() *Accessor {
	return &Accessor{}
}

// Capture returns a value copy of the target's state. Later mutation of the
// target never changes the returned snapshot.
func (a *Accessor) Capture(target any) (domain.StateMap, error) {
	if c, ok := target.(ports.StateCapturer); ok {
		return copyState(c.CaptureState()), nil
	}
	if m, ok := target.(ports.FieldMapper); ok {
		return copyState(m.Fields()), nil
	}
	if slots, ok := slotsFor(target); ok {
		return captureSlots(target, slots), nil
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrNotStateful, ""), "type", typeName(target))
}

// Restore fully overwrites the target's state with the snapshot. Fields
// absent from the snapshot are reset, never merged.
func (a *Accessor) Restore(target any, snapshot domain.StateMap) error {
	if r, ok := target.(ports.StateRestorer); ok {
		r.RestoreState(copyState(snapshot))
		return nil
	}
	if m, ok := target.(ports.FieldMapper); ok {
		fields := m.Fields()
		clear(fields)
		for k, v := range snapshot {
			fields[k] = deepCopy(v)
		}
		return nil
	}
	if slots, ok := slotsFor(target); ok {
		return restoreSlots(target, slots, snapshot)
	}
	return zerr.With(zerr.Wrap(domain.ErrNotStateful, ""), "type", typeName(target))
}

func copyState(s domain.StateMap) domain.StateMap {
	out := make(domain.StateMap, len(s))
	for k, v := range s {
		out[k] = deepCopy(v)
	}
	return out
}

func typeName(target any) string {
	if target == nil {
		return "<nil>"
	}
	return reflect.TypeOf(target).String()
}
