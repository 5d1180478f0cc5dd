package state

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"go.trai.ch/zerr"
)

// slotRegistry maps target types to their declared, closed set of fields.
// Registration is static, at startup, rather than probed at runtime.
var slotRegistry sync.Map // reflect.Type -> []string

// RegisterSlots declares the closed field set of T for slot-based state
// access. Fields must name exported, settable fields of T. Registration
// errors are programmer defects, so they panic, like gob.Register.
func RegisterSlots[T any](fields ...string) {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("state: RegisterSlots target %s is not a struct", t))
	}
	for _, name := range fields {
		f, ok := t.FieldByName(name)
		if !ok {
			panic(fmt.Sprintf("state: type %s has no field %q", t, name))
		}
		if !f.IsExported() {
			panic(fmt.Sprintf("state: field %s.%s is not exported", t, name))
		}
	}
	slotRegistry.Store(t, append([]string(nil), fields...))
}

// slotsFor returns the registered slot names for the target's struct type.
// The target must be a pointer for restore to be able to write through it.
func slotsFor(target any) ([]string, bool) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil, false
	}
	v, ok := slotRegistry.Load(rv.Elem().Type())
	if !ok {
		return nil, false
	}
	return v.([]string), true
}

func captureSlots(target any, slots []string) domain.StateMap {
	rv := reflect.ValueOf(target).Elem()
	out := make(domain.StateMap, len(slots))
	for _, name := range slots {
		out[name] = deepCopy(rv.FieldByName(name).Interface())
	}
	return out
}

// restoreSlots overwrites every declared slot. A slot absent from the
// snapshot is zeroed, so restore never merges with the current state.
func restoreSlots(target any, slots []string, snapshot domain.StateMap) error {
	rv := reflect.ValueOf(target).Elem()
	for _, name := range slots {
		field := rv.FieldByName(name)
		v, ok := snapshot[name]
		if !ok || v == nil {
			field.Set(reflect.Zero(field.Type()))
			continue
		}
		value := reflect.ValueOf(deepCopy(v))
		if !value.Type().AssignableTo(field.Type()) {
			if !value.Type().ConvertibleTo(field.Type()) {
				return zerr.With(zerr.With(zerr.New("snapshot value does not fit slot"), "slot", name), "type", value.Type().String())
			}
			value = value.Convert(field.Type())
		}
		field.Set(value)
	}
	return nil
}
