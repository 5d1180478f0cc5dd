// Package maurice memoizes expensive, side-effecting operations performed on
// stateful objects. Given an operation bound to a specific instance, it
// decides whether an equivalent invocation was already computed, and if so
// restores both the instance's resulting state and the return value instead
// of re-executing the operation.
//
// Entries are content-addressed by deterministic fingerprints of the
// target's state and the call's arguments, stored one directory per entry,
// and published atomically so concurrent processes sharing a cache directory
// stay consistent without locks.
package maurice

import (
	"context"

	"github.com/tpvasconcelos/maurice/internal/adapters/cas"
	"github.com/tpvasconcelos/maurice/internal/adapters/codec"
	"github.com/tpvasconcelos/maurice/internal/adapters/config"
	"github.com/tpvasconcelos/maurice/internal/adapters/hashing"
	"github.com/tpvasconcelos/maurice/internal/adapters/logger"
	"github.com/tpvasconcelos/maurice/internal/adapters/state"
	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"github.com/tpvasconcelos/maurice/internal/core/ports"
	"github.com/tpvasconcelos/maurice/internal/engine/memoizer"
)

// Aliases for the domain types that appear in the public API.
type (
	// StateMap is a captured, restorable snapshot of a target's fields.
	StateMap = domain.StateMap

	// Fingerprint is a hex digest of a value under the configured algorithm.
	Fingerprint = domain.Fingerprint

	// Table is a plain columnar value for shape-aware fingerprinting.
	Table = domain.Table

	// TableOptions selects row/column canonicalization axes.
	TableOptions = domain.TableOptions

	// Settings holds the resolved cache configuration.
	Settings = domain.Settings

	// Metadata is the audit descriptor stored with each entry.
	Metadata = domain.Metadata

	// StateCapturer is the capture half of the explicit accessor pair.
	StateCapturer = ports.StateCapturer

	// StateRestorer is the restore half of the explicit accessor pair.
	StateRestorer = ports.StateRestorer

	// FieldMapper exposes a target's live, mutable field mapping.
	FieldMapper = ports.FieldMapper

	// BoundOperation is the call-time reference supplied by an interception
	// layer: an operation bound to its owning instance.
	BoundOperation = ports.BoundOperation

	// Logger is the logging interface accepted by WithLogger.
	Logger = ports.Logger

	// StateChange records one field's transition between two snapshots.
	StateChange = state.Change

	// StateChanges is a state diff, sorted by field name.
	StateChanges = state.Changes

	// StateDetector watches one target across operations and reports which
	// fields each observation window touched.
	StateDetector = state.Detector
)

// Change kinds reported by state diffs.
const (
	ChangeAdded    = state.ChangeAdded
	ChangeRemoved  = state.ChangeRemoved
	ChangeModified = state.ChangeModified
)

// Sentinel errors surfaced by the cache. All of them are fatal for the call
// that produced them; none are retried internally.
var (
	ErrUnserializableValue        = domain.ErrUnserializableValue
	ErrNotStateful                = domain.ErrNotStateful
	ErrEntryNotFound              = domain.ErrEntryNotFound
	ErrCorruptEntry               = domain.ErrCorruptEntry
	ErrMisconfiguredReplay        = domain.ErrMisconfiguredReplay
	ErrOperationNotRegistered     = domain.ErrOperationNotRegistered
	ErrOperationAlreadyRegistered = domain.ErrOperationAlreadyRegistered
)

// DefaultSettings returns the settings used when no configuration is given.
func DefaultSettings() *Settings {
	return domain.DefaultSettings()
}

// LoadSettings reads .maurice.yaml from the given directory, falling back to
// defaults when absent.
func LoadSettings(cwd string) (*Settings, error) {
	return config.NewLoader().Load(cwd)
}

// RegisterSnapshotType registers a concrete type for snapshot payloads that
// travel as interface values, mirroring gob.Register.
func RegisterSnapshotType(v any) {
	codec.RegisterType(v)
}

// RegisterSlots declares the closed field set of T for slot-based state
// access, the lowest-priority state capability.
func RegisterSlots[T any](fields ...string) {
	state.RegisterSlots[T](fields...)
}

// Option configures a Cache.
type Option func(*cacheConfig)

type cacheConfig struct {
	settings *Settings
	logger   Logger
}

// WithSettings uses the given settings instead of the defaults.
func WithSettings(s *Settings) Option {
	return func(c *cacheConfig) { c.settings = s }
}

// WithLogger replaces the default stderr logger.
func WithLogger(l Logger) Option {
	return func(c *cacheConfig) { c.logger = l }
}

// Cache is the memoization cache facade: a registry of interceptable
// operations in front of the orchestrator.
type Cache struct {
	memoizer     *memoizer.Memoizer
	fingerprints ports.Fingerprinter
	states       ports.StateAccessor
	registry     *Registry
	settings     *Settings
}

// New creates a Cache with the full component graph: fingerprint engine,
// state accessor, gob codec, and the directory entry store rooted at the
// configured cache dir.
func New(opts ...Option) (*Cache, error) {
	cfg := cacheConfig{settings: domain.DefaultSettings()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger.New()
	}

	fingerprints, err := hashing.FromSettings(cfg.settings)
	if err != nil {
		return nil, err
	}

	store, err := cas.NewStore(cfg.settings.StorePath(), cfg.logger)
	if err != nil {
		return nil, err
	}

	states := state.New()
	m := memoizer.New(store, fingerprints, states, codec.New(), cfg.logger)

	return &Cache{
		memoizer:     m,
		fingerprints: fingerprints,
		states:       states,
		registry:     NewRegistry(),
		settings:     cfg.settings,
	}, nil
}

// Registry returns the cache's operation registry.
func (c *Cache) Registry() *Registry {
	return c.registry
}

// Settings returns the cache's resolved settings.
func (c *Cache) Settings() *Settings {
	return c.settings
}

// Call memoizes a registered operation on the given target. The registration
// decides whether the target's state matters for the cache key.
func (c *Cache) Call(ctx context.Context, target any, operation string, args []any, kwargs map[string]any) (any, error) {
	reg, ok := c.registry.lookup(target, operation)
	if !ok {
		return nil, notRegistered(target, operation)
	}

	bound := &boundOperation{target: target, name: operation, fn: reg.fn}
	return c.memoizer.Call(ctx, bound, args, kwargs, reg.stateMatters)
}

// CallBound memoizes an operation supplied directly by an interception
// layer, bypassing the registry.
func (c *Cache) CallBound(ctx context.Context, op BoundOperation, args []any, kwargs map[string]any, stateMatters bool) (any, error) {
	return c.memoizer.Call(ctx, op, args, kwargs, stateMatters)
}

// WatchState starts a change detector on the target, with the target's
// current state as the first baseline. Observing after each operation shows
// which fields the operation touched, which is the practical way to verify
// that an operation registered as state-independent really leaves its target
// alone.
func (c *Cache) WatchState(target any) (*StateDetector, error) {
	return state.NewDetector(c.states, target)
}

// DiffStates compares two snapshots and reports every field addition,
// removal, and modification between them.
func DiffStates(before, after StateMap) StateChanges {
	return state.Diff(before, after)
}

// Fingerprint computes the digest of an arbitrary value under the cache's
// configured algorithm.
func (c *Cache) Fingerprint(v any) (Fingerprint, error) {
	return c.fingerprints.Fingerprint(v)
}

// FingerprintTable computes the digest of a tabular value with explicit
// canonicalization axes.
func (c *Cache) FingerprintTable(tbl Table, opts TableOptions) (Fingerprint, error) {
	return c.fingerprints.FingerprintTable(tbl, opts)
}
