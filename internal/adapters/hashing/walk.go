package hashing

import (
	"encoding"
	"encoding/binary"
	"hash"
	"math"
	"reflect"
	"sort"

	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"go.trai.ch/zerr"
)

// Kind tags written ahead of each value so that values of different kinds
// can never collide byte-wise.
const (
	tagNil     = 'z'
	tagBool    = 'b'
	tagInt     = 'i'
	tagUint    = 'u'
	tagFloat   = 'f'
	tagComplex = 'c'
	tagString  = 's'
	tagBytes   = 'y'
	tagList    = 'l'
	tagMap     = 'm'
	tagStruct  = 'r'
	tagShape   = 'h'
)

// walker feeds one value into a digest deterministically. Map entries are
// fingerprinted independently and their digests sorted before combining, so
// insertion order never changes the result.
type walker struct {
	f    *Fingerprinter
	h    hash.Hash
	seen map[uintptr]bool
}

func newWalker(f *Fingerprinter, h hash.Hash) *walker {
	return &walker{f: f, h: h}
}

func (w *walker) writeAny(v any) error {
	if v == nil {
		w.tag(tagNil)
		return nil
	}

	// A value carrying its own canonical representation short-circuits the
	// structural walk.
	switch m := v.(type) {
	case Digestible:
		data, err := m.DigestBytes()
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrUnserializableValue, ""), "cause", err.Error())
		}
		w.bytes(tagBytes, data)
		return nil
	case encoding.BinaryMarshaler:
		data, err := m.MarshalBinary()
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrUnserializableValue, ""), "cause", err.Error())
		}
		w.bytes(tagBytes, data)
		return nil
	case encoding.TextMarshaler:
		data, err := m.MarshalText()
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrUnserializableValue, ""), "cause", err.Error())
		}
		w.bytes(tagBytes, data)
		return nil
	}

	// Nested shape values (tables and injected canonicalizers) contribute
	// their shape-aware digest instead of their raw structure.
	for _, s := range w.f.shapes {
		if s.Handles(v) {
			d, err := s.Fingerprint(w.f, v)
			if err != nil {
				return err
			}
			w.bytes(tagShape, []byte(d))
			return nil
		}
	}

	return w.writeValue(reflect.ValueOf(v))
}

//nolint:gocyclo // One case per reflect kind; splitting would obscure the mapping.
func (w *walker) writeValue(rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Invalid:
		w.tag(tagNil)
		return nil

	case reflect.Bool:
		w.tag(tagBool)
		if rv.Bool() {
			_, _ = w.h.Write([]byte{1})
		} else {
			_, _ = w.h.Write([]byte{0})
		}
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.tag(tagInt)
		return w.word(uint64(rv.Int()))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		w.tag(tagUint)
		return w.word(rv.Uint())

	case reflect.Float32, reflect.Float64:
		w.tag(tagFloat)
		return w.word(math.Float64bits(rv.Float()))

	case reflect.Complex64, reflect.Complex128:
		w.tag(tagComplex)
		c := rv.Complex()
		if err := w.word(math.Float64bits(real(c))); err != nil {
			return err
		}
		return w.word(math.Float64bits(imag(c)))

	case reflect.String:
		return w.writeString(rv.String())

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			w.tag(tagNil)
			return nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			w.bytes(tagBytes, toByteSlice(rv))
			return nil
		}
		w.tag(tagList)
		if err := w.word(uint64(rv.Len())); err != nil {
			return err
		}
		for i := 0; i < rv.Len(); i++ {
			if err := w.element(rv.Index(i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		if rv.IsNil() {
			w.tag(tagNil)
			return nil
		}
		if err := w.push(rv.Pointer()); err != nil {
			return err
		}
		err := w.writeMap(rv)
		w.pop(rv.Pointer())
		return err

	case reflect.Struct:
		return w.writeStruct(rv)

	case reflect.Ptr:
		if rv.IsNil() {
			w.tag(tagNil)
			return nil
		}
		if err := w.push(rv.Pointer()); err != nil {
			return err
		}
		err := w.element(rv.Elem())
		w.pop(rv.Pointer())
		return err

	case reflect.Interface:
		if rv.IsNil() {
			w.tag(tagNil)
			return nil
		}
		return w.element(rv.Elem())

	default:
		// Chan, Func, UnsafePointer: no stable serialized form. Silently
		// skipping would corrupt cache-key uniqueness, so this is fatal.
		return zerr.With(zerr.Wrap(domain.ErrUnserializableValue, ""), "kind", rv.Kind().String())
	}
}

// writeMap combines the independently computed digests of each entry in
// sorted order, giving key-set semantics to all mappings (and therefore to
// set-like map[T]struct{} values).
func (w *walker) writeMap(rv reflect.Value) error {
	w.tag(tagMap)
	if err := w.word(uint64(rv.Len())); err != nil {
		return err
	}

	entries := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		eh := w.f.newDigest()
		ew := newWalker(w.f, eh)
		ew.seen = w.seen
		if err := ew.element(iter.Key()); err != nil {
			return err
		}
		if err := ew.element(iter.Value()); err != nil {
			return err
		}
		entries = append(entries, string(w.f.sum(eh)))
	}
	sort.Strings(entries)

	for _, e := range entries {
		w.bytes(tagString, []byte(e))
	}
	return nil
}

// writeStruct hashes exported fields in declared order. A struct with fields
// but none exported has no observable value and cannot be fingerprinted.
func (w *walker) writeStruct(rv reflect.Value) error {
	rt := rv.Type()
	w.tag(tagStruct)

	exported := 0
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		exported++
		if err := w.writeString(field.Name); err != nil {
			return err
		}
		if err := w.element(rv.Field(i)); err != nil {
			return zerr.With(err, "field", field.Name)
		}
	}

	if exported == 0 && rt.NumField() > 0 {
		return zerr.With(zerr.Wrap(domain.ErrUnserializableValue, ""), "type", rt.String())
	}
	return nil
}

// element routes a reflect value back through the interface-aware path when
// it can be materialized, so Digestible and marshaler implementations nested
// inside composites are honored.
func (w *walker) element(rv reflect.Value) error {
	if rv.CanInterface() {
		return w.writeAny(rv.Interface())
	}
	return w.writeValue(rv)
}

func (w *walker) writeString(s string) error {
	w.bytes(tagString, []byte(s))
	return nil
}

func (w *walker) tag(t byte) {
	_, _ = w.h.Write([]byte{t})
}

// bytes writes a tag plus length-prefixed payload, so adjacent values can
// never be reframed into each other.
func (w *walker) bytes(t byte, data []byte) {
	w.tag(t)
	_ = w.word(uint64(len(data)))
	_, _ = w.h.Write(data)
}

func (w *walker) word(v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = w.h.Write(buf[:])
	return nil
}

// push rejects reference cycles, which have no finite serialized form.
// Shared acyclic references are fine: pop removes the pointer once its
// subtree is written.
func (w *walker) push(ptr uintptr) error {
	if w.seen == nil {
		w.seen = make(map[uintptr]bool)
	}
	if w.seen[ptr] {
		return zerr.With(zerr.Wrap(domain.ErrUnserializableValue, ""), "reason", "cyclic value")
	}
	w.seen[ptr] = true
	return nil
}

func (w *walker) pop(ptr uintptr) {
	delete(w.seen, ptr)
}

func toByteSlice(rv reflect.Value) []byte {
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 && rv.Type() == reflect.TypeOf([]byte(nil)) {
		return rv.Interface().([]byte)
	}
	out := make([]byte, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = byte(rv.Index(i).Uint())
	}
	return out
}
