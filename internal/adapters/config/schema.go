package config

// File is the on-disk shape of pacdef.yaml. Pointer fields distinguish an
// absent key from its zero value so that defaults survive partial files.
type File struct {
	AURHelper         *string  `yaml:"aur_helper"`
	AURRemoveArgs     []string `yaml:"aur_rm_args"`
	FlatpakSystemwide *bool    `yaml:"flatpak_systemwide"`
	PipBinary         *string  `yaml:"pip_binary"`
	WarnNotSymlinks   *bool    `yaml:"warn_not_symlinks"`
	DisabledBackends  []string `yaml:"disabled_backends"`
	Editor            *string  `yaml:"editor"`
	Parallelism       *int     `yaml:"parallelism"`
}
