// Package hashing implements the fingerprint engine: deterministic digests
// of arbitrary values under a named hash algorithm.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"github.com/tpvasconcelos/maurice/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Digestible lets a value provide its own canonical bytes for fingerprinting
// instead of going through the generic structural walk.
type Digestible interface {
	DigestBytes() ([]byte, error)
}

// ShapeHandler recognizes values of a specific data shape and fingerprints
// them with shape-aware canonicalization. Handlers are injected at
// construction and probed in registration order before the generic walk.
type ShapeHandler interface {
	Handles(v any) bool
	Fingerprint(f *Fingerprinter, v any) (domain.Fingerprint, error)
}

// Option configures a Fingerprinter.
type Option func(*Fingerprinter)

// WithShapeHandler registers an additional shape canonicalizer.
func WithShapeHandler(h ShapeHandler) Option {
	return func(f *Fingerprinter) {
		f.shapes = append(f.shapes, h)
	}
}

// WithTableOptions sets the canonicalization axes applied when a domain.Table
// is fingerprinted through the generic Fingerprint path.
func WithTableOptions(opts domain.TableOptions) Option {
	return func(f *Fingerprinter) {
		f.tableOpts = opts
	}
}

// Fingerprinter computes stable digests for scalars, composites, and tabular
// data. Fingerprints are structural: two values with equal serialized shape
// hash identically regardless of their Go type names.
type Fingerprinter struct {
	algorithm string
	newDigest func() hash.Hash
	tableOpts domain.TableOptions
	shapes    []ShapeHandler
}

// New creates a Fingerprinter for the named algorithm.
func New(algorithm string, opts ...Option) (*Fingerprinter, error) {
	f := &Fingerprinter{
		algorithm: algorithm,
		tableOpts: domain.TableOptions{SortRows: true, SortColumns: true},
	}

	switch algorithm {
	case domain.AlgorithmXXHash64:
		f.newDigest = func() hash.Hash { return xxhash.New() }
	case domain.AlgorithmSHA256:
		f.newDigest = sha256.New
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownAlgorithm, ""), "algorithm", algorithm)
	}

	for _, opt := range opts {
		opt(f)
	}

	// The table canonicalizer is always available; extra handlers are probed
	// before it so callers can override the tabular shape.
	f.shapes = append(f.shapes, tableHandler{})

	return f, nil
}

// FromSettings creates a Fingerprinter configured from resolved settings.
func FromSettings(settings *domain.Settings, opts ...Option) (*Fingerprinter, error) {
	opts = append([]Option{WithTableOptions(settings.Table)}, opts...)
	return New(settings.Algorithm, opts...)
}

// Algorithm returns the configured algorithm name.
func (f *Fingerprinter) Algorithm() string {
	return f.algorithm
}

// Fingerprint computes the digest of an arbitrary value.
func (f *Fingerprinter) Fingerprint(v any) (domain.Fingerprint, error) {
	for _, s := range f.shapes {
		if s.Handles(v) {
			return s.Fingerprint(f, v)
		}
	}

	h := f.newDigest()
	w := newWalker(f, h)
	if err := w.writeAny(v); err != nil {
		return "", err
	}
	return f.sum(h), nil
}

// FingerprintArgs computes the combined digest of a call's arguments.
// The positional tuple is order-sensitive; the named bundle has key-set
// semantics, so permutation of insertion order never changes the result.
func (f *Fingerprinter) FingerprintArgs(args []any, kwargs map[string]any) (domain.Fingerprint, error) {
	h := f.newDigest()

	_, _ = h.Write([]byte{'A'})
	for _, arg := range args {
		d, err := f.Fingerprint(arg)
		if err != nil {
			return "", err
		}
		_, _ = h.Write([]byte(d))
		_, _ = h.Write([]byte{0})
	}

	_, _ = h.Write([]byte{'K'})
	entries := make([]string, 0, len(kwargs))
	for name, value := range kwargs {
		eh := f.newDigest()
		ew := newWalker(f, eh)
		if err := ew.writeString(name); err != nil {
			return "", err
		}
		if err := ew.writeAny(value); err != nil {
			return "", zerr.With(err, "kwarg", name)
		}
		entries = append(entries, string(f.sum(eh)))
	}
	// Sorting the entry digests makes the combination order-independent.
	sort.Strings(entries)
	for _, e := range entries {
		_, _ = h.Write([]byte(e))
		_, _ = h.Write([]byte{0})
	}

	return f.sum(h), nil
}

// FingerprintSeries computes the digest of a homogeneous sequence by hashing
// each element independently and combining the element digests. Digests are
// always totally orderable, so order independence only needs a sort on them,
// never on the raw values.
func (f *Fingerprinter) FingerprintSeries(values []any, sortValues bool) (domain.Fingerprint, error) {
	digests := make([]string, len(values))
	for i, v := range values {
		d, err := f.Fingerprint(v)
		if err != nil {
			return "", err
		}
		digests[i] = string(d)
	}
	if sortValues {
		sort.Strings(digests)
	}

	h := f.newDigest()
	for _, d := range digests {
		_, _ = h.Write([]byte(d))
		_, _ = h.Write([]byte{0})
	}
	return f.sum(h), nil
}

func (f *Fingerprinter) sum(h hash.Hash) domain.Fingerprint {
	return domain.Fingerprint(hex.EncodeToString(h.Sum(nil)))
}
