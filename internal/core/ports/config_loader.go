package ports

import "go.trai.ch/pacdef/internal/core/domain"

// ConfigLoader defines the interface for loading the user configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file, falling back to defaults when it does not exist.
	// The returned config always carries resolved paths.
	Load() (*domain.Config, error)
}

// GroupLoader defines the interface for reading group declarations.
type GroupLoader interface {
	// Load reads every group file below cfg.Paths.GroupsDir.
	Load(cfg *domain.Config) (domain.Groups, error)
}
