// Package cas implements content-addressed storage of cache entries.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"github.com/tpvasconcelos/maurice/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EntryStore = (*Store)(nil)

// Store implements ports.EntryStore using a directory per entry. An entry is
// assembled in a private staging directory and made visible by a single
// rename, so a reader can never observe a half-written entry.
type Store struct {
	root   string
	logger ports.Logger
}

// NewStore creates a store rooted at the given directory.
func NewStore(root string, logger ports.Logger) (*Store, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(filepath.Join(root, domain.StagingDirName), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, ""), "cause", err.Error())
	}
	return &Store{root: root, logger: logger}, nil
}

// Root returns the store root directory.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) entryDir(key domain.CacheKey) string {
	return filepath.Join(s.root, key.Path())
}

// Exists reports whether an entry is published at the given key.
func (s *Store) Exists(key domain.CacheKey) bool {
	info, err := os.Stat(s.entryDir(key))
	return err == nil && info.IsDir()
}

// Read returns the entry at the given key.
func (s *Store) Read(key domain.CacheKey) (*domain.Entry, error) {
	dir := s.entryDir(key)
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrEntryNotFound, ""), "key", key.Path())
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, ""), "cause", err.Error())
	}

	entry := &domain.Entry{}

	//nolint:gosec // Path is built from the store root and fingerprint segments
	result, err := os.ReadFile(filepath.Join(dir, domain.ResultFileName))
	if err != nil {
		// The location exists but the required result blob does not: the
		// entry is corrupt, not absent. Never deleted or repaired here.
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrCorruptEntry, ""), "cause", err.Error()), "key", key.Path())
	}
	entry.Result = result

	//nolint:gosec // Path is built from the store root and fingerprint segments
	state, err := os.ReadFile(filepath.Join(dir, domain.StateFileName))
	switch {
	case err == nil:
		entry.State = state
	case errors.Is(err, fs.ErrNotExist) && key.Stateless():
		// Stateless entries have no state blob.
	case errors.Is(err, fs.ErrNotExist):
		// The key demands a state snapshot; an entry without one cannot be
		// replayed faithfully.
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrCorruptEntry, ""), "cause", "state snapshot missing"), "key", key.Path())
	default:
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrCorruptEntry, ""), "cause", err.Error()), "key", key.Path())
	}

	entry.Meta = s.readMetadata(dir)

	return entry, nil
}

// readMetadata loads the audit descriptor. It is introspection-only, so a
// missing or unreadable descriptor degrades to nil instead of failing the read.
func (s *Store) readMetadata(dir string) *domain.Metadata {
	//nolint:gosec // Path is built from the store root and fingerprint segments
	data, err := os.ReadFile(filepath.Join(dir, domain.MetadataFileName))
	if err != nil {
		return nil
	}
	var meta domain.Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		s.logger.Warn("ignoring malformed metadata descriptor", "dir", dir)
		return nil
	}
	return &meta
}

// Write stages the entry next to the store root and publishes it with one
// rename. If another writer already published the key, the staged entry is
// discarded without error: the competing result is equivalent.
func (s *Store) Write(key domain.CacheKey, entry *domain.Entry) error {
	stage := filepath.Join(s.root, domain.StagingDirName, uuid.NewString())
	if err := s.writeStage(stage, key, entry); err != nil {
		_ = os.RemoveAll(stage)
		return err
	}

	dest := s.entryDir(key)
	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		_ = os.RemoveAll(stage)
		return zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, ""), "cause", err.Error())
	}

	if err := os.Rename(stage, dest); err != nil {
		_ = os.RemoveAll(stage)
		if s.Exists(key) {
			s.logger.Info("publish lost race, keeping existing entry", "key", key.Path())
			return nil
		}
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrStorePublishFailed, ""), "cause", err.Error()), "key", key.Path())
	}

	return nil
}

func (s *Store) writeStage(stage string, key domain.CacheKey, entry *domain.Entry) error {
	if err := os.MkdirAll(stage, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, ""), "cause", err.Error())
	}

	//nolint:gosec // Staging path is store-owned
	if err := os.WriteFile(filepath.Join(stage, domain.ResultFileName), entry.Result, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, ""), "cause", err.Error())
	}

	if entry.State != nil {
		//nolint:gosec // Staging path is store-owned
		if err := os.WriteFile(filepath.Join(stage, domain.StateFileName), entry.State, domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, ""), "cause", err.Error())
		}
	}

	if entry.Meta != nil {
		data, err := json.MarshalIndent(entry.Meta, "", "  ")
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, ""), "cause", err.Error())
		}
		//nolint:gosec // Staging path is store-owned
		if err := os.WriteFile(filepath.Join(stage, domain.MetadataFileName), data, domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, ""), "cause", err.Error())
		}
	}

	return nil
}
