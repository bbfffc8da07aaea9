package backend

import (
	"context"
	"encoding/json"
	"errors"

	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports"
	"go.trai.ch/zerr"
)

// Python manages user-level pip packages.
type Python struct {
	declaration
	runner ports.CommandRunner
	pip    string
}

// NewPython creates an unloaded python backend.
func NewPython(cfg *domain.Config, runner ports.CommandRunner) *Python {
	return &Python{
		declaration: newDeclaration(KindPython),
		runner:      runner,
		pip:         cfg.PipBinary,
	}
}

type pipPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// InstalledPackages lists every package pip can see.
func (p *Python) InstalledPackages(ctx context.Context) (domain.PackageSet, error) {
	return p.list(ctx, "list", "--format=json")
}

// ExplicitPackages lists packages that no other installed package requires.
func (p *Python) ExplicitPackages(ctx context.Context) (domain.PackageSet, error) {
	return p.list(ctx, "list", "--not-required", "--format=json")
}

func (p *Python) list(ctx context.Context, args ...string) (domain.PackageSet, error) {
	out, err := query(ctx, p.runner, p.section, domain.NewCommand(p.pip, args...))
	if err != nil {
		return nil, err
	}

	var pkgs []pipPackage
	if err := json.Unmarshal(out, &pkgs); err != nil {
		return nil, errors.Join(domain.ErrQueryFailed,
			zerr.With(zerr.Wrap(err, "unexpected pip output"), "section", p.section))
	}

	names := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		names = append(names, pkg.Name)
	}
	return domain.NewPackageSet(names...), nil
}

// Install installs the packages into the user site.
func (p *Python) Install(ctx context.Context, packages domain.PackageSet, _ domain.ActionOptions) error {
	return act(ctx, p.runner, p.section, domain.NewCommand(p.pip, "install", "--user"), packages)
}

// Remove uninstalls the packages. pip does not remove dependencies.
func (p *Python) Remove(ctx context.Context, packages domain.PackageSet, opts domain.ActionOptions) error {
	args := withFlag([]string{"uninstall"}, opts.NoConfirm, "-y")
	return act(ctx, p.runner, p.section, domain.NewCommand(p.pip, args...), packages)
}
