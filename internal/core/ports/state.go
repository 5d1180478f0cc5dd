package ports

import "github.com/tpvasconcelos/maurice/internal/core/domain"

// StateCapturer is the explicit accessor half of the first state capability:
// a target that knows how to snapshot its own externally visible state.
type StateCapturer interface {
	CaptureState() domain.StateMap
}

// StateRestorer is the restore half of the explicit accessor pair.
type StateRestorer interface {
	RestoreState(state domain.StateMap)
}

// FieldMapper is the second state capability: a target exposing a mutable
// mapping of its fields. The returned map must be the live field mapping, so
// that writes through it change the target's state.
type FieldMapper interface {
	Fields() domain.StateMap
}

// StateAccessor captures and restores the externally visible state of a
// target object, probing the three supported capabilities in priority order:
// explicit accessor pair, field mapping, registered slots.
//
//go:generate go run go.uber.org/mock/mockgen -source=state.go -destination=mocks/mock_state.go -package=mocks
type StateAccessor interface {
	// Capture returns a value copy of the target's state. Later mutation of
	// the target must not change the returned snapshot. Returns
	// domain.ErrNotStateful when no capability applies.
	Capture(target any) (domain.StateMap, error)

	// Restore fully overwrites the target's state with the snapshot, so that
	// replay reproduces the original post-execution state exactly.
	Restore(target any, state domain.StateMap) error
}
