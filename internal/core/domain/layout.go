package domain

import "path/filepath"

const (
	// AppDirName is the name of the pacdef directory inside the user config directory.
	AppDirName = "pacdef"

	// GroupsDirName is the name of the directory holding group files.
	GroupsDirName = "groups"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "pacdef.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Paths holds the resolved locations pacdef reads from.
type Paths struct {
	ConfigDir  string
	GroupsDir  string
	ConfigFile string
}

// NewPaths derives all locations from the user config directory (e.g. ~/.config).
func NewPaths(userConfigDir string) Paths {
	dir := filepath.Join(userConfigDir, AppDirName)
	return Paths{
		ConfigDir:  dir,
		GroupsDir:  filepath.Join(dir, GroupsDirName),
		ConfigFile: filepath.Join(dir, ConfigFileName),
	}
}

// GroupFile returns the path of the group file with the given name.
func (p Paths) GroupFile(name string) string {
	return filepath.Join(p.GroupsDir, filepath.FromSlash(name))
}
