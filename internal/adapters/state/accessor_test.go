package state_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tpvasconcelos/maurice/internal/adapters/state"
	"github.com/tpvasconcelos/maurice/internal/core/domain"
)

// explicitCounter implements the explicit accessor pair.
type explicitCounter struct {
	count int
	label string
}

func (c *explicitCounter) CaptureState() domain.StateMap {
	return domain.StateMap{"count": c.count, "label": c.label}
}

func (c *explicitCounter) RestoreState(s domain.StateMap) {
	c.count, _ = s["count"].(int)
	c.label, _ = s["label"].(string)
}

// mappedBag exposes its live field mapping.
type mappedBag struct {
	fields domain.StateMap
}

func (b *mappedBag) Fields() domain.StateMap {
	return b.fields
}

// slottedPoint relies on registered slots.
type slottedPoint struct {
	X, Y    int
	scratch string //nolint:unused // Deliberately outside the declared slots.
}

func init() {
	state.RegisterSlots[slottedPoint]("X", "Y")
}

func TestCapture_ExplicitAccessor(t *testing.T) {
	a := state.New()
	c := &explicitCounter{count: 3, label: "x"}

	snap, err := a.Capture(c)
	require.NoError(t, err)
	require.Equal(t, domain.StateMap{"count": 3, "label": "x"}, snap)

	// The snapshot is a value copy: target mutation must not leak into it.
	c.count = 99
	require.Equal(t, 3, snap["count"])
}

func TestRestore_ExplicitAccessor(t *testing.T) {
	a := state.New()
	c := &explicitCounter{count: 99, label: "dirty"}

	err := a.Restore(c, domain.StateMap{"count": 3, "label": "x"})
	require.NoError(t, err)
	require.Equal(t, 3, c.count)
	require.Equal(t, "x", c.label)
}

func TestCapture_FieldMapper(t *testing.T) {
	a := state.New()
	b := &mappedBag{fields: domain.StateMap{"n": 1, "tags": []any{"a"}}}

	snap, err := a.Capture(b)
	require.NoError(t, err)

	// Mutating the live mapping, including interior values, must not change
	// the snapshot.
	b.fields["n"] = 2
	b.fields["tags"].([]any)[0] = "b"
	require.Equal(t, 1, snap["n"])
	require.Equal(t, []any{"a"}, snap["tags"])
}

func TestRestore_FieldMapperOverwrites(t *testing.T) {
	a := state.New()
	b := &mappedBag{fields: domain.StateMap{"stale": true, "n": 9}}

	err := a.Restore(b, domain.StateMap{"n": 1})
	require.NoError(t, err)

	// Restore replaces the whole mapping; keys absent from the snapshot are
	// gone, not merged.
	require.Equal(t, domain.StateMap{"n": 1}, b.fields)
}

func TestCapture_Slots(t *testing.T) {
	a := state.New()
	p := &slottedPoint{X: 1, Y: 2}

	snap, err := a.Capture(p)
	require.NoError(t, err)
	require.Equal(t, domain.StateMap{"X": 1, "Y": 2}, snap)

	p.X = 50
	require.Equal(t, 1, snap["X"])
}

func TestRestore_SlotsZeroesAbsent(t *testing.T) {
	a := state.New()
	p := &slottedPoint{X: 9, Y: 9}

	err := a.Restore(p, domain.StateMap{"X": 4})
	require.NoError(t, err)
	require.Equal(t, 4, p.X)
	require.Equal(t, 0, p.Y)
}

func TestCapture_SlotsRequirePointer(t *testing.T) {
	a := state.New()

	// A non-pointer target cannot be restored through, so the slot
	// capability does not apply to it at all.
	_, err := a.Capture(slottedPoint{X: 1})
	require.ErrorIs(t, err, domain.ErrNotStateful)
}

func TestCapture_NotStateful(t *testing.T) {
	a := state.New()

	type plain struct{ N int }
	_, err := a.Capture(&plain{N: 1})
	require.ErrorIs(t, err, domain.ErrNotStateful)

	err = a.Restore(&plain{}, domain.StateMap{"N": 1})
	require.ErrorIs(t, err, domain.ErrNotStateful)
}

func TestCaptureRestore_RoundTrip(t *testing.T) {
	a := state.New()
	c := &explicitCounter{count: 7, label: "orig"}

	snap, err := a.Capture(c)
	require.NoError(t, err)

	c.count = 1000
	c.label = "mutated"

	require.NoError(t, a.Restore(c, snap))
	require.Equal(t, 7, c.count)
	require.Equal(t, "orig", c.label)
}

func TestRegisterSlots_Validation(t *testing.T) {
	require.Panics(t, func() {
		state.RegisterSlots[slottedPoint]("NoSuchField")
	})
	require.Panics(t, func() {
		state.RegisterSlots[slottedPoint]("scratch")
	})
	require.Panics(t, func() {
		state.RegisterSlots[int]()
	})
}
