package ports

import "github.com/tpvasconcelos/maurice/internal/core/domain"

// ConfigLoader resolves the cache settings for a working directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory, falling
	// back to defaults when no config file is present.
	Load(cwd string) (*domain.Settings, error)
}
