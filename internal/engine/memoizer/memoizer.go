// Package memoizer implements the memoization orchestrator: the single
// entry point deciding replay-or-execute for a bound operation.
package memoizer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"github.com/tpvasconcelos/maurice/internal/core/ports"
	"go.trai.ch/zerr"
)

// Memoizer drives one call through key build, store lookup, and either
// replay or execute-then-publish. It holds no per-call state; correctness
// under concurrency rests entirely on the store's atomic publish.
type Memoizer struct {
	store        ports.EntryStore
	fingerprints ports.Fingerprinter
	states       ports.StateAccessor
	codec        ports.Codec
	logger       ports.Logger
	keys         *KeyBuilder
}

// New creates a new Memoizer.
func New(
	store ports.EntryStore,
	fingerprints ports.Fingerprinter,
	states ports.StateAccessor,
	codec ports.Codec,
	logger ports.Logger,
) *Memoizer {
	return &Memoizer{
		store:        store,
		fingerprints: fingerprints,
		states:       states,
		codec:        codec,
		logger:       logger,
		keys:         NewKeyBuilder(fingerprints, states),
	}
}

// Call memoizes one invocation of a bound operation. On a hit the stored
// result is returned and, when state matters, the target's state is restored
// to the stored post-execution snapshot; the operation itself (and its side
// effects) never runs. On a miss the operation executes with the original
// arguments and the outcome is published. Losing a publish race is not an
// error: the freshly computed result is returned either way.
func (m *Memoizer) Call(ctx context.Context, op ports.BoundOperation, args []any, kwargs map[string]any, stateMatters bool) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := m.keys.BuildKey(op.Target(), op.Name(), args, kwargs, stateMatters)
	if err != nil {
		return nil, err
	}

	// The result must be produced by exactly one of the two paths below.
	// Tracking that with an explicit flag (not a sentinel value) keeps falsy
	// but valid results, like nil or zero, replayable.
	var result any
	resultSet := false

	if m.store.Exists(key) {
		result, err = m.replay(op.Target(), key, stateMatters)
		if err != nil {
			return nil, err
		}
		resultSet = true
		m.logger.Info("cache hit", "key", key.Path())
	} else {
		result, err = op.Invoke(args, kwargs)
		if err != nil {
			// A failed execution is never cached.
			return nil, err
		}
		resultSet = true

		if err := m.publish(op, key, args, kwargs, stateMatters, result); err != nil {
			return nil, err
		}
		m.logger.Info("cache miss, entry published", "key", key.Path())
	}

	if !resultSet {
		return nil, domain.ErrMisconfiguredReplay
	}
	return result, nil
}

// replay restores the stored post-execution state into the target (when
// state matters) and decodes the stored result.
func (m *Memoizer) replay(target any, key domain.CacheKey, stateMatters bool) (any, error) {
	entry, err := m.store.Read(key)
	if err != nil {
		return nil, err
	}

	if stateMatters {
		if entry.State == nil {
			// The store guarantees a state blob for stateful keys; reaching
			// this point means the entry cannot reproduce the recorded
			// post-state, and replaying only the result would desync the two.
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrCorruptEntry, ""), "cause", "state snapshot missing"), "key", key.Path())
		}
		decoded, err := m.codec.Decode(entry.State)
		if err != nil {
			return nil, err
		}
		snapshot, ok := decoded.(domain.StateMap)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrCorruptEntry, ""), "key", key.Path())
		}
		if err := m.states.Restore(target, snapshot); err != nil {
			return nil, err
		}
	}

	return m.codec.Decode(entry.Result)
}

// publish captures the post-execution state (when state matters), encodes
// the snapshots, and hands the entry to the store's atomic publish.
func (m *Memoizer) publish(op ports.BoundOperation, key domain.CacheKey, args []any, kwargs map[string]any, stateMatters bool, result any) error {
	entry := &domain.Entry{}

	encodedResult, err := m.codec.Encode(result)
	if err != nil {
		return err
	}
	entry.Result = encodedResult

	resultFp, err := m.fingerprints.Fingerprint(result)
	if err != nil {
		return err
	}

	meta := &domain.Metadata{
		Operation:    op.Name(),
		ArgsRepr:     fmt.Sprintf("%#v", args),
		KwargsRepr:   formatKwargs(kwargs),
		StateMatters: stateMatters,
		ResultRepr:   fmt.Sprintf("%#v", result),
		ResultHash:   resultFp.String(),
	}

	if stateMatters {
		snapshot, err := m.states.Capture(op.Target())
		if err != nil {
			return err
		}
		encodedState, err := m.codec.Encode(snapshot)
		if err != nil {
			return err
		}
		stateFp, err := m.fingerprints.Fingerprint(snapshot)
		if err != nil {
			return err
		}
		entry.State = encodedState
		meta.StateRepr = formatState(snapshot)
		meta.StateHash = stateFp.String()
	}

	entry.Meta = meta
	return m.store.Write(key, entry)
}

// formatKwargs renders a named-argument bundle with sorted keys so the
// descriptor is stable across runs.
func formatKwargs(kwargs map[string]any) string {
	return formatState(kwargs)
}

func formatState(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q: %#v", k, m[k])
	}
	b.WriteString("}")
	return b.String()
}
