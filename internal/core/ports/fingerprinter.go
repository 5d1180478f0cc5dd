// Package ports defines the interfaces between the cache core and its
// adapters.
package ports

import "github.com/tpvasconcelos/maurice/internal/core/domain"

// Fingerprinter turns values into stable, short digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint computes the digest of an arbitrary value. Returns
	// domain.ErrUnserializableValue for values that cannot be serialized.
	Fingerprint(v any) (domain.Fingerprint, error)

	// FingerprintArgs computes the combined digest of a call's arguments.
	// Positional order is significant; named-argument order is not.
	FingerprintArgs(args []any, kwargs map[string]any) (domain.Fingerprint, error)

	// FingerprintTable computes the digest of a tabular value without hashing
	// the whole byte stream through the generic codec. Row and column order
	// sensitivity are selected independently by opts.
	FingerprintTable(tbl domain.Table, opts domain.TableOptions) (domain.Fingerprint, error)

	// FingerprintSeries computes the digest of a homogeneous sequence by
	// hashing each element independently. When sortValues is true, element
	// order is insignificant.
	FingerprintSeries(values []any, sortValues bool) (domain.Fingerprint, error)

	// Algorithm returns the configured algorithm name.
	Algorithm() string
}
