package ports

import "github.com/tpvasconcelos/maurice/internal/core/domain"

// EntryStore is the durable, content-addressed storage of cache entries.
//
// Write must be atomic: a reader never observes a partially written entry,
// and when two writers race for the same key, exactly one entry becomes
// visible and the loser discards its own work without error.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type EntryStore interface {
	// Exists reports whether an entry is published at the given key.
	Exists(key domain.CacheKey) bool

	// Read returns the entry at the given key. Returns domain.ErrEntryNotFound
	// when the key's location does not exist and domain.ErrCorruptEntry when a
	// required blob is missing or unreadable. A missing metadata descriptor is
	// not an error.
	Read(key domain.CacheKey) (*domain.Entry, error)

	// Write stages the entry privately and publishes it with a single atomic
	// rename. Losing a publish race to an equivalent entry is not an error.
	Write(key domain.CacheKey, entry *domain.Entry) error
}
