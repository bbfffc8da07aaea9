package backend

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports"
)

// Rust manages crates installed with cargo install.
type Rust struct {
	declaration
	runner ports.CommandRunner
}

// NewRust creates an unloaded rust backend.
func NewRust(runner ports.CommandRunner) *Rust {
	return &Rust{declaration: newDeclaration(KindRust), runner: runner}
}

// InstalledPackages lists installed crates. cargo prints one unindented
// "name vX.Y.Z:" line per crate followed by indented binary names.
func (r *Rust) InstalledPackages(ctx context.Context) (domain.PackageSet, error) {
	out, err := query(ctx, r.runner, r.section, domain.NewCommand("cargo", "install", "--list"))
	if err != nil {
		return nil, err
	}

	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == ' ' || line[0] == '\t' {
			continue
		}
		if name, _, ok := strings.Cut(line, " "); ok {
			names = append(names, name)
		}
	}
	return domain.NewPackageSet(names...), nil
}

// ExplicitPackages is the same as InstalledPackages: cargo only installs
// crates on request.
func (r *Rust) ExplicitPackages(ctx context.Context) (domain.PackageSet, error) {
	return r.InstalledPackages(ctx)
}

// Install installs the crates.
func (r *Rust) Install(ctx context.Context, packages domain.PackageSet, _ domain.ActionOptions) error {
	return act(ctx, r.runner, r.section, domain.NewCommand("cargo", "install"), packages)
}

// Remove uninstalls the crates.
func (r *Rust) Remove(ctx context.Context, packages domain.PackageSet, _ domain.ActionOptions) error {
	return act(ctx, r.runner, r.section, domain.NewCommand("cargo", "uninstall"), packages)
}
