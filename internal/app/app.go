// Package app implements the application layer for the maurice CLI.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"github.com/tpvasconcelos/maurice/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic for cache introspection.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		logger:       logger,
	}
}

// EntrySummary describes one published cache entry.
type EntrySummary struct {
	// KeyPath is the entry's hierarchical key, relative to the store root.
	KeyPath string

	// Stateful reports whether the entry carries a state snapshot.
	Stateful bool

	// Meta is the audit descriptor, nil when absent or malformed.
	Meta *domain.Metadata
}

// List enumerates all published entries under the store root, newest layout
// first by key path. Entry descriptors are read concurrently.
func (a *App) List(ctx context.Context) ([]EntrySummary, error) {
	root, err := a.storeRoot()
	if err != nil {
		return nil, err
	}

	paths, err := collectEntryDirs(root)
	if err != nil {
		return nil, err
	}

	summaries := make([]EntrySummary, len(paths))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	var mu sync.Mutex

	for i, dir := range paths {
		g.Go(func() error {
			summary, err := summarize(root, dir)
			if err != nil {
				return err
			}
			mu.Lock()
			summaries[i] = summary
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].KeyPath < summaries[j].KeyPath
	})
	return summaries, nil
}

// Inspect returns the audit descriptor of the entry at the given key path.
func (a *App) Inspect(_ context.Context, keyPath string) (*domain.Metadata, error) {
	root, err := a.storeRoot()
	if err != nil {
		return nil, err
	}
	if err := validateKeyPath(keyPath); err != nil {
		return nil, err
	}

	dir := filepath.Join(root, filepath.Clean(keyPath))
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrEntryNotFound, ""), "key", keyPath)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, ""), "cause", err.Error())
	}

	//nolint:gosec // Path is rooted at the configured store dir
	data, err := os.ReadFile(filepath.Join(dir, domain.MetadataFileName))
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, ""), "cause", err.Error()), "key", keyPath)
	}

	var meta domain.Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrCorruptEntry, ""), "cause", err.Error()), "key", keyPath)
	}
	return &meta, nil
}

// CleanOptions selects what Clean removes.
type CleanOptions struct {
	// All removes the whole cache root, including old format versions.
	All bool

	// KeyPath removes a single key subtree. Ignored when All is set.
	KeyPath string
}

// Clean removes cached entries. Entries are otherwise permanent: there is no
// eviction and no TTL, so this is the only way space is reclaimed.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	settings, err := a.configLoader.Load(".")
	if err != nil {
		return err
	}

	if opts.All {
		a.logger.Info("removing cache root", "dir", settings.CacheDir)
		return removeAll(settings.CacheDir)
	}

	if opts.KeyPath != "" {
		if err := validateKeyPath(opts.KeyPath); err != nil {
			return err
		}
		target := filepath.Join(settings.StorePath(), filepath.Clean(opts.KeyPath))
		a.logger.Info("removing cache subtree", "dir", target)
		return removeAll(target)
	}

	a.logger.Info("removing cache store", "dir", settings.StorePath())
	return removeAll(settings.StorePath())
}

// validateKeyPath rejects key paths that would resolve outside the store
// root once joined, such as absolute paths or paths with leading "..".
func validateKeyPath(keyPath string) error {
	if !filepath.IsLocal(keyPath) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidKeyPath, ""), "key", keyPath)
	}
	return nil
}

func (a *App) storeRoot() (string, error) {
	settings, err := a.configLoader.Load(".")
	if err != nil {
		return "", err
	}
	return settings.StorePath(), nil
}

// collectEntryDirs walks the store and returns every directory holding a
// result blob. The staging area is skipped: in-flight entries are private.
func collectEntryDirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipAll
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == domain.StagingDirName {
			return filepath.SkipDir
		}
		if _, err := os.Stat(filepath.Join(path, domain.ResultFileName)); err == nil {
			dirs = append(dirs, path)
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, ""), "cause", err.Error())
	}
	return dirs, nil
}

func summarize(root, dir string) (EntrySummary, error) {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return EntrySummary{}, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, ""), "cause", err.Error())
	}

	summary := EntrySummary{KeyPath: filepath.ToSlash(rel)}

	if _, err := os.Stat(filepath.Join(dir, domain.StateFileName)); err == nil {
		summary.Stateful = true
	}

	//nolint:gosec // Path is rooted at the configured store dir
	data, err := os.ReadFile(filepath.Join(dir, domain.MetadataFileName))
	if err == nil {
		var meta domain.Metadata
		if json.Unmarshal(data, &meta) == nil {
			summary.Meta = &meta
		}
	}
	return summary, nil
}

func removeAll(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove cache directory"), "dir", dir)
	}
	return nil
}
