// Package domain contains the core domain types for the memoization cache.
package domain

// Fingerprint is a fixed-length hex digest of a value under a named hash
// algorithm. Equal logical values always produce equal fingerprints, across
// process restarts.
type Fingerprint string

// String returns the hex digest.
func (f Fingerprint) String() string { return string(f) }

// Supported fingerprint algorithm names. The algorithm is part of the
// external cache contract: changing it moves entries to a different
// value space, it does not make old digests comparable to new ones.
const (
	// AlgorithmXXHash64 is the default algorithm (64-bit xxhash, 16 hex chars).
	AlgorithmXXHash64 = "xxhash64"

	// AlgorithmSHA256 is the cryptographic alternative (64 hex chars).
	AlgorithmSHA256 = "sha256"
)

// DefaultAlgorithm is the algorithm used when none is configured.
const DefaultAlgorithm = AlgorithmXXHash64
