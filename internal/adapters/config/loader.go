// Package config provides the configuration loader for the memoization
// cache.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"github.com/tpvasconcelos/maurice/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader for the default config filename.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: domain.ConfigFileName}
}

// Load reads the configuration from the given working directory. A missing
// config file is not an error: defaults apply.
func (l *FileConfigLoader) Load(cwd string) (*domain.Settings, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// Load reads a configuration file from the given path and returns the
// resolved settings.
func Load(path string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, ""), "cause", err.Error())
	}

	var file mauriceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, ""), "cause", err.Error())
	}

	if file.Cache.Dir != "" {
		settings.CacheDir = filepath.Clean(file.Cache.Dir)
	}
	if file.Fingerprint.Algorithm != "" {
		settings.Algorithm = file.Fingerprint.Algorithm
	}
	if file.Fingerprint.SortRows != nil {
		settings.Table.SortRows = *file.Fingerprint.SortRows
	}
	if file.Fingerprint.SortColumns != nil {
		settings.Table.SortColumns = *file.Fingerprint.SortColumns
	}

	switch settings.Algorithm {
	case domain.AlgorithmXXHash64, domain.AlgorithmSHA256:
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownAlgorithm, ""), "algorithm", settings.Algorithm)
	}

	return settings, nil
}
