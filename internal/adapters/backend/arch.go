package backend

import (
	"context"

	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports"
)

// Arch manages pacman packages. Mutations go through the configured AUR
// helper so that AUR packages can be declared next to repository ones.
type Arch struct {
	declaration
	runner     ports.CommandRunner
	helper     string
	removeArgs []string
}

// NewArch creates an unloaded arch backend.
func NewArch(cfg *domain.Config, runner ports.CommandRunner) *Arch {
	return &Arch{
		declaration: newDeclaration(KindArch),
		runner:      runner,
		helper:      cfg.AURHelper,
		removeArgs:  cfg.AURRemoveArgs,
	}
}

// InstalledPackages lists every installed package, including dependencies.
func (a *Arch) InstalledPackages(ctx context.Context) (domain.PackageSet, error) {
	out, err := query(ctx, a.runner, a.section, domain.NewCommand("pacman", "-Qq"))
	if err != nil {
		return nil, err
	}
	return parseLines(out), nil
}

// ExplicitPackages lists packages installed explicitly.
func (a *Arch) ExplicitPackages(ctx context.Context) (domain.PackageSet, error) {
	out, err := query(ctx, a.runner, a.section, domain.NewCommand("pacman", "-Qqe"))
	if err != nil {
		return nil, err
	}
	return parseLines(out), nil
}

// Install installs the packages with the AUR helper, skipping those already present.
func (a *Arch) Install(ctx context.Context, packages domain.PackageSet, opts domain.ActionOptions) error {
	args := withFlag([]string{"-S", "--needed"}, opts.NoConfirm, "--noconfirm")
	return act(ctx, a.runner, a.section, domain.NewCommand(a.helper, args...), packages)
}

// Remove removes the packages recursively, together with their configuration.
func (a *Arch) Remove(ctx context.Context, packages domain.PackageSet, opts domain.ActionOptions) error {
	args := append([]string{"-Rsn"}, a.removeArgs...)
	args = withFlag(args, opts.NoConfirm, "--noconfirm")
	return act(ctx, a.runner, a.section, domain.NewCommand(a.helper, args...), packages)
}
