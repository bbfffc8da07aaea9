package domain

import "slices"

// Config holds the user settings read from pacdef.yaml.
type Config struct {
	// AURHelper is the pacman wrapper used to install and remove arch packages.
	AURHelper string `yaml:"aur_helper"`

	// AURRemoveArgs are passed to the AUR helper when removing packages.
	AURRemoveArgs []string `yaml:"aur_rm_args"`

	// FlatpakSystemwide selects system-wide instead of per-user flatpak installations.
	FlatpakSystemwide bool `yaml:"flatpak_systemwide"`

	// PipBinary is the pip executable used by the python backend.
	PipBinary string `yaml:"pip_binary"`

	// WarnNotSymlinks logs a warning for group files that are not symlinks.
	WarnNotSymlinks bool `yaml:"warn_not_symlinks"`

	// DisabledBackends lists backend sections that are never queried.
	DisabledBackends []string `yaml:"disabled_backends"`

	// Editor overrides $EDITOR for the edit command.
	Editor string `yaml:"editor"`

	// Parallelism bounds concurrent backend queries. Zero means one per CPU.
	Parallelism int `yaml:"parallelism"`

	// Paths are resolved at load time and never read from the file.
	Paths Paths `yaml:"-"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		AURHelper:         "paru",
		AURRemoveArgs:     []string{},
		FlatpakSystemwide: true,
		PipBinary:         "pip",
		DisabledBackends:  []string{},
	}
}

// BackendDisabled reports whether the given backend section is disabled.
func (c *Config) BackendDisabled(section string) bool {
	return slices.Contains(c.DisabledBackends, section)
}
