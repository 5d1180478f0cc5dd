package domain

import "path/filepath"

const (
	// CacheDirName is the default name of the cache root directory.
	CacheDirName = ".maurice_cache"

	// CacheFormatVersion is the on-disk format version segment. A change in
	// fingerprint algorithm or entry layout bumps this, moving new entries to
	// a fresh namespace instead of colliding with old ones.
	CacheFormatVersion = "v1"

	// StagingDirName is the directory holding in-flight entries before their
	// atomic publish. It is never part of any cache key path.
	StagingDirName = ".staging"

	// StateFileName is the state snapshot blob inside an entry directory.
	// Present only when the operation was declared state-dependent.
	StateFileName = "state.blob"

	// ResultFileName is the result snapshot blob inside an entry directory.
	ResultFileName = "result.blob"

	// MetadataFileName is the audit descriptor inside an entry directory.
	MetadataFileName = "metadata.json"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = ".maurice.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Settings holds the resolved cache configuration.
type Settings struct {
	// CacheDir is the cache root directory.
	CacheDir string

	// Algorithm is the fingerprint algorithm name.
	Algorithm string

	// Table holds the default canonicalization axes applied when a Table
	// value is fingerprinted through the generic path.
	Table TableOptions
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	return &Settings{
		CacheDir:  CacheDirName,
		Algorithm: DefaultAlgorithm,
		Table:     TableOptions{SortRows: true, SortColumns: true},
	}
}

// StorePath returns the versioned store root under the configured cache dir.
func (s *Settings) StorePath() string {
	return filepath.Join(s.CacheDir, CacheFormatVersion)
}
