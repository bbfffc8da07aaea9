// Package config loads pacdef.yaml and resolves the pacdef directories.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pacdef/internal/adapters/backend"
	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the pacdef directories and reads the config file. A missing
// file yields the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	userDir, err := UserConfigDir()
	if err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig()
	cfg.Paths = domain.NewPaths(userDir)

	data, err := os.ReadFile(cfg.Paths.ConfigFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.Logger.Debug("no config file at " + cfg.Paths.ConfigFile + ", using defaults")
		return &cfg, nil
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", cfg.Paths.ConfigFile)
	}

	var file File
	if err := decodeStrict(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", cfg.Paths.ConfigFile)
	}

	if err := apply(&cfg, &file); err != nil {
		return nil, zerr.With(err, "path", cfg.Paths.ConfigFile)
	}

	return &cfg, nil
}

// UserConfigDir returns $XDG_CONFIG_HOME, falling back to $HOME/.config.
func UserConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config"), nil
	}
	return "", domain.ErrConfigDirNotFound
}

func decodeStrict(data []byte, target *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func apply(cfg *domain.Config, file *File) error {
	if file.AURHelper != nil {
		cfg.AURHelper = *file.AURHelper
	}
	if file.AURRemoveArgs != nil {
		cfg.AURRemoveArgs = file.AURRemoveArgs
	}
	if file.FlatpakSystemwide != nil {
		cfg.FlatpakSystemwide = *file.FlatpakSystemwide
	}
	if file.PipBinary != nil {
		cfg.PipBinary = *file.PipBinary
	}
	if file.WarnNotSymlinks != nil {
		cfg.WarnNotSymlinks = *file.WarnNotSymlinks
	}
	if file.Editor != nil {
		cfg.Editor = *file.Editor
	}
	if file.Parallelism != nil {
		if *file.Parallelism < 0 {
			return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "parallelism must not be negative"),
				"parallelism", *file.Parallelism)
		}
		cfg.Parallelism = *file.Parallelism
	}

	for _, name := range file.DisabledBackends {
		if _, err := backend.ParseKind(name); err != nil {
			return err
		}
	}
	if file.DisabledBackends != nil {
		cfg.DisabledBackends = file.DisabledBackends
	}

	return nil
}
