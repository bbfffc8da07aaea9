// Package groupfile reads group files from the pacdef groups directory.
package groupfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.GroupLoader.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads every non-hidden file below the groups directory. A group is
// named after its path relative to that directory, using forward slashes.
// Symlinks to files are followed. A missing directory yields no groups.
func (l *Loader) Load(cfg *domain.Config) (domain.Groups, error) {
	root := cfg.Paths.GroupsDir

	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn("groups directory " + root + " does not exist")
		return domain.NewGroups(), nil
	}

	var groups []domain.Group
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return zerr.With(zerr.Wrap(walkErr, domain.ErrGroupReadFailed.Error()), "path", path)
		}
		if path == root {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		group, ok, err := l.loadFile(root, path, d, cfg.WarnNotSymlinks)
		if err != nil {
			return err
		}
		if ok {
			groups = append(groups, group)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return domain.NewGroups(groups...), nil
}

func (l *Loader) loadFile(root, path string, d fs.DirEntry, warnNotSymlinks bool) (domain.Group, bool, error) {
	isLink := d.Type()&fs.ModeSymlink != 0
	if isLink {
		info, err := os.Stat(path)
		if err != nil {
			l.logger.Warn("ignoring broken group symlink " + path)
			return domain.Group{}, false, nil
		}
		if !info.Mode().IsRegular() {
			return domain.Group{}, false, nil
		}
	} else if !d.Type().IsRegular() {
		return domain.Group{}, false, nil
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return domain.Group{}, false, zerr.With(zerr.Wrap(err, domain.ErrGroupReadFailed.Error()), "path", path)
	}
	name := filepath.ToSlash(rel)

	if warnNotSymlinks && !isLink {
		l.logger.Warn("group '" + name + "' is not a symlink")
	}

	f, err := os.Open(path) //nolint:gosec // path comes from walking the groups directory
	if err != nil {
		return domain.Group{}, false, zerr.With(zerr.Wrap(err, domain.ErrGroupReadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	sections, err := Parse(f)
	if err != nil {
		return domain.Group{}, false, zerr.With(err, "path", path)
	}

	return domain.Group{Name: name, Path: path, Sections: sections}, true, nil
}
