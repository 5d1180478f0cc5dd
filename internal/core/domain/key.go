package domain

import "path/filepath"

// StatelessSegment is the literal state segment used when an operation has
// been declared state-independent. It is not valid hex, so it can never
// collide with a real state fingerprint.
const StatelessSegment = "_stateless"

// AnonymousSegment is the namespace segment used for targets whose type has
// no package path (local or anonymous types). Identity is debuggability-only,
// so collisions here are harmless.
const AnonymousSegment = "_anonymous"

// TargetIdentity identifies where a target type is defined. It is used only
// for a human-readable key layout, never for correctness.
type TargetIdentity struct {
	// Namespace is the sequence of package path segments owning the type.
	Namespace []string

	// TypeName is the name of the target type.
	TypeName string
}

// CacheKey is the hierarchical identifier of one cache entry.
type CacheKey struct {
	Identity TargetIdentity

	// StateSegment is the state fingerprint hex, or StatelessSegment when the
	// operation was declared state-independent.
	StateSegment string

	// Operation is the name of the memoized operation.
	Operation string

	// ArgsFingerprint is the combined fingerprint of the positional and named
	// arguments.
	ArgsFingerprint Fingerprint
}

// Stateless reports whether the key was built for a state-independent
// operation.
func (k CacheKey) Stateless() bool {
	return k.StateSegment == StatelessSegment
}

// Segments returns the hierarchical path segments of the key, most
// significant first.
func (k CacheKey) Segments() []string {
	segs := make([]string, 0, len(k.Identity.Namespace)+4)
	segs = append(segs, k.Identity.Namespace...)
	segs = append(segs, k.Identity.TypeName, k.StateSegment, k.Operation, k.ArgsFingerprint.String())
	return segs
}

// Path returns the key as a filesystem-style relative path.
func (k CacheKey) Path() string {
	return filepath.Join(k.Segments()...)
}
