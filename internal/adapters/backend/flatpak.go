package backend

import (
	"context"

	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports"
)

// Flatpak manages flatpak applications in either the system or the user installation.
type Flatpak struct {
	declaration
	runner     ports.CommandRunner
	systemwide bool
}

// NewFlatpak creates an unloaded flatpak backend.
func NewFlatpak(cfg *domain.Config, runner ports.CommandRunner) *Flatpak {
	return &Flatpak{
		declaration: newDeclaration(KindFlatpak),
		runner:      runner,
		systemwide:  cfg.FlatpakSystemwide,
	}
}

func (f *Flatpak) installation() string {
	if f.systemwide {
		return "--system"
	}
	return "--user"
}

// InstalledPackages lists the installed application IDs. Runtimes are not listed.
func (f *Flatpak) InstalledPackages(ctx context.Context) (domain.PackageSet, error) {
	cmd := domain.NewCommand("flatpak", "list", "--app", "--columns=application", f.installation())
	out, err := query(ctx, f.runner, f.section, cmd)
	if err != nil {
		return nil, err
	}
	return parseLines(out), nil
}

// ExplicitPackages is the same as InstalledPackages: flatpak applications are
// always installed on request.
func (f *Flatpak) ExplicitPackages(ctx context.Context) (domain.PackageSet, error) {
	return f.InstalledPackages(ctx)
}

// Install installs the applications from the configured remotes.
func (f *Flatpak) Install(ctx context.Context, packages domain.PackageSet, opts domain.ActionOptions) error {
	args := withFlag([]string{"install", f.installation()}, opts.NoConfirm, "-y")
	return act(ctx, f.runner, f.section, domain.NewCommand("flatpak", args...), packages)
}

// Remove uninstalls the applications.
func (f *Flatpak) Remove(ctx context.Context, packages domain.PackageSet, opts domain.ActionOptions) error {
	args := withFlag([]string{"uninstall", f.installation()}, opts.NoConfirm, "-y")
	return act(ctx, f.runner, f.section, domain.NewCommand("flatpak", args...), packages)
}
