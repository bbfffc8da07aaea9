// Package backend implements the package-manager backends pacdef reconciles.
package backend

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports"
	"go.trai.ch/zerr"
)

// Kind identifies a backend variant. Its value is the group file section name.
type Kind string

// The closed set of backends, in registry order.
const (
	KindArch    Kind = "arch"
	KindDebian  Kind = "debian"
	KindFlatpak Kind = "flatpak"
	KindPython  Kind = "python"
	KindRust    Kind = "rust"
)

// AllKinds returns every backend kind in registry order.
func AllKinds() []Kind {
	return []Kind{KindArch, KindDebian, KindFlatpak, KindPython, KindRust}
}

// ParseKind resolves a section name to its Kind.
func ParseKind(section string) (Kind, error) {
	for _, k := range AllKinds() {
		if string(k) == section {
			return k, nil
		}
	}
	return "", zerr.Wrap(domain.ErrUnknownBackend, fmt.Sprintf("invalid backend %q", section))
}

// New creates a fresh, unloaded backend of the given kind.
func New(kind Kind, cfg *domain.Config, runner ports.CommandRunner) (ports.Backend, error) {
	switch kind {
	case KindArch:
		return NewArch(cfg, runner), nil
	case KindDebian:
		return NewDebian(runner), nil
	case KindFlatpak:
		return NewFlatpak(cfg, runner), nil
	case KindPython:
		return NewPython(cfg, runner), nil
	case KindRust:
		return NewRust(runner), nil
	default:
		return nil, zerr.Wrap(domain.ErrUnknownBackend, fmt.Sprintf("invalid backend %q", kind))
	}
}

// declaration holds the part of a backend that is independent of the tool.
type declaration struct {
	section  string
	declared domain.PackageSet
}

func newDeclaration(kind Kind) declaration {
	return declaration{section: string(kind), declared: domain.NewPackageSet()}
}

// Section returns the group file section of the backend.
func (d *declaration) Section() string {
	return d.section
}

// Load replaces the declared packages with the union of the backend's section
// across all groups.
func (d *declaration) Load(groups domain.Groups) {
	d.declared = groups.Declared(d.section)
}

// Declared returns the packages collected by the last Load.
func (d *declaration) Declared() domain.PackageSet {
	return d.declared
}

// query runs cmd and classifies its failure for the given section.
func query(ctx context.Context, runner ports.CommandRunner, section string, cmd domain.Command) ([]byte, error) {
	out, err := runner.Output(ctx, cmd)
	if err == nil {
		return out, nil
	}
	if errors.Is(err, domain.ErrBackendUnavailable) {
		return nil, zerr.With(err, "section", section)
	}
	return nil, errors.Join(domain.ErrQueryFailed, zerr.With(err, "section", section))
}

// act runs cmd with the packages appended. An empty set runs nothing.
func act(ctx context.Context, runner ports.CommandRunner, section string, cmd domain.Command, packages domain.PackageSet) error {
	if packages.IsEmpty() {
		return nil
	}

	cmd.Args = append(append([]string{}, cmd.Args...), packages...)
	if err := runner.Run(ctx, cmd); err != nil {
		return zerr.With(err, "section", section)
	}
	return nil
}

// parseLines treats every non-empty line of out as a package name.
func parseLines(out []byte) domain.PackageSet {
	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			names = append(names, name)
		}
	}
	return domain.NewPackageSet(names...)
}

func withFlag(args []string, enabled bool, flag string) []string {
	if enabled {
		return append(args, flag)
	}
	return args
}
