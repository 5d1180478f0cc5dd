package memoizer

import (
	"reflect"
	"strings"

	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"github.com/tpvasconcelos/maurice/internal/core/ports"
)

// IdentityOf derives the target identity from the dynamic type of target:
// the owning package path split into segments, plus the type name. Identity
// shapes the key layout for humans; the fingerprints carry correctness.
func IdentityOf(target any) domain.TargetIdentity {
	t := reflect.TypeOf(target)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return domain.TargetIdentity{
			Namespace: []string{domain.AnonymousSegment},
			TypeName:  domain.AnonymousSegment,
		}
	}

	namespace := []string{domain.AnonymousSegment}
	if pkg := t.PkgPath(); pkg != "" {
		namespace = strings.Split(pkg, "/")
	}

	name := t.Name()
	if name == "" {
		name = domain.AnonymousSegment
	}

	return domain.TargetIdentity{Namespace: namespace, TypeName: name}
}

// KeyBuilder composes hierarchical cache keys from target identity, state
// fingerprint, operation name, and argument fingerprint.
type KeyBuilder struct {
	fingerprints ports.Fingerprinter
	states       ports.StateAccessor
}

// NewKeyBuilder creates a new KeyBuilder.
func NewKeyBuilder(fingerprints ports.Fingerprinter, states ports.StateAccessor) *KeyBuilder {
	return &KeyBuilder{fingerprints: fingerprints, states: states}
}

// BuildKey builds the cache key for one call. When stateMatters is false the
// target's state is never captured or fingerprinted: the caller has declared
// it irrelevant, and serializing a potentially large state for nothing is
// the cost this flag exists to avoid.
func (b *KeyBuilder) BuildKey(target any, operation string, args []any, kwargs map[string]any, stateMatters bool) (domain.CacheKey, error) {
	stateSegment := domain.StatelessSegment
	if stateMatters {
		snapshot, err := b.states.Capture(target)
		if err != nil {
			return domain.CacheKey{}, err
		}
		fp, err := b.fingerprints.Fingerprint(snapshot)
		if err != nil {
			return domain.CacheKey{}, err
		}
		stateSegment = fp.String()
	}

	argsFp, err := b.fingerprints.FingerprintArgs(args, kwargs)
	if err != nil {
		return domain.CacheKey{}, err
	}

	return domain.CacheKey{
		Identity:        IdentityOf(target),
		StateSegment:    stateSegment,
		Operation:       operation,
		ArgsFingerprint: argsFp,
	}, nil
}
