package domain

import "go.trai.ch/zerr"

var (
	// ErrUnserializableValue is returned when a value in the state or arguments
	// cannot be fingerprinted or serialized. Fatal, never retried.
	ErrUnserializableValue = zerr.New("value cannot be serialized")

	// ErrNotStateful is returned when a state capture was requested but the
	// target exposes none of the supported state representations.
	ErrNotStateful = zerr.New("target exposes no capturable state")

	// ErrEntryNotFound is returned when a store read is attempted on a key
	// that does not exist.
	ErrEntryNotFound = zerr.New("cache entry not found")

	// ErrCorruptEntry is returned when an entry's location exists but a
	// required blob is unreadable or malformed. Surfaced so the operator can
	// intervene; the entry is never deleted or repaired automatically.
	ErrCorruptEntry = zerr.New("cache entry is corrupt")

	// ErrMisconfiguredReplay is returned when neither the replay path nor the
	// execution path produced a result. Always a programming defect.
	ErrMisconfiguredReplay = zerr.New("misconfigured replay: no result was produced")

	// ErrUnknownAlgorithm is returned when an unsupported fingerprint
	// algorithm name is configured.
	ErrUnknownAlgorithm = zerr.New("unknown fingerprint algorithm")

	// ErrTableShape is returned when a table row does not have exactly one
	// cell per column.
	ErrTableShape = zerr.New("table row width does not match column count")

	// ErrOperationNotRegistered is returned when a call targets an operation
	// that was never registered for the target type.
	ErrOperationNotRegistered = zerr.New("operation not registered")

	// ErrOperationAlreadyRegistered is returned when an operation is
	// registered twice for the same target type.
	ErrOperationAlreadyRegistered = zerr.New("operation already registered")

	// ErrInvalidKeyPath is returned when a key path given to a maintenance
	// command would resolve outside the cache store root.
	ErrInvalidKeyPath = zerr.New("key path escapes the cache store")

	// ErrStoreCreateFailed is returned when the store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cache store directory")

	// ErrStoreReadFailed is returned when an entry blob cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache entry")

	// ErrStoreWriteFailed is returned when a staged entry cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache entry")

	// ErrStorePublishFailed is returned when a staged entry cannot be moved
	// into place and the destination does not exist either.
	ErrStorePublishFailed = zerr.New("failed to publish cache entry")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
