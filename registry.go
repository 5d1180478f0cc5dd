package maurice

import (
	"reflect"
	"sync"

	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"go.trai.ch/zerr"
)

// OperationFunc executes one operation against its target. It receives the
// live target so side effects land on the instance the caller holds.
type OperationFunc func(target any, args []any, kwargs map[string]any) (any, error)

type opKey struct {
	target reflect.Type
	name   string
}

type registration struct {
	fn           OperationFunc
	stateMatters bool
}

// Registry maps (target type, operation name) pairs to their implementations
// plus the per-operation decision of whether target state participates in
// the cache key. Safe for concurrent use.
type Registry struct {
	mu  sync.RWMutex
	ops map[opKey]registration
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[opKey]registration)}
}

// Register binds an operation name on the dynamic type of target. Pointer
// and value receivers register under the same key. Registering the same
// pair twice is an error.
func (r *Registry) Register(target any, name string, stateMatters bool, fn OperationFunc) error {
	key := opKey{target: baseType(target), name: name}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ops[key]; exists {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrOperationAlreadyRegistered, ""), "type", key.target.String()), "operation", name)
	}
	r.ops[key] = registration{fn: fn, stateMatters: stateMatters}

	return nil
}

// RegisterOperation registers a type-safe operation on targets of type T.
func RegisterOperation[T any](r *Registry, name string, stateMatters bool, fn func(target T, args []any, kwargs map[string]any) (any, error)) error {
	var zero T
	return r.Register(zero, name, stateMatters, func(target any, args []any, kwargs map[string]any) (any, error) {
		typed, ok := target.(T)
		if !ok {
			return nil, notRegistered(target, name)
		}
		return fn(typed, args, kwargs)
	})
}

func (r *Registry) lookup(target any, name string) (registration, bool) {
	key := opKey{target: baseType(target), name: name}

	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.ops[key]
	return reg, ok
}

// baseType strips pointer indirection so *T and T share registrations.
func baseType(target any) reflect.Type {
	t := reflect.TypeOf(target)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func notRegistered(target any, name string) error {
	typeName := "nil"
	if t := baseType(target); t != nil {
		typeName = t.String()
	}
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrOperationNotRegistered, ""), "type", typeName), "operation", name)
}

// boundOperation adapts a registry entry plus a live target into the
// call-time reference the orchestrator consumes.
type boundOperation struct {
	target any
	name   string
	fn     OperationFunc
}

func (b *boundOperation) Target() any { return b.target }

func (b *boundOperation) Name() string { return b.name }

func (b *boundOperation) Invoke(args []any, kwargs map[string]any) (any, error) {
	return b.fn(b.target, args, kwargs)
}
