package ports

import "go.scitex.ch/vessel/internal/core/domain"

// ConfigLoader resolves the vessel configuration for a working directory.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds and parses the configuration, walking up from cwd. A
	// missing config file yields the defaults rather than an error.
	Load(cwd string) (*domain.Config, error)
}
