package backend

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports"
)

// Debian manages dpkg packages through apt.
type Debian struct {
	declaration
	runner ports.CommandRunner
}

// NewDebian creates an unloaded debian backend.
func NewDebian(runner ports.CommandRunner) *Debian {
	return &Debian{declaration: newDeclaration(KindDebian), runner: runner}
}

// InstalledPackages lists packages whose dpkg status is "installed".
// Removed packages that still have configuration files are skipped.
func (d *Debian) InstalledPackages(ctx context.Context) (domain.PackageSet, error) {
	cmd := domain.NewCommand("dpkg-query", "-W", `-f=${db:Status-Status} ${Package}\n`)
	out, err := query(ctx, d.runner, d.section, cmd)
	if err != nil {
		return nil, err
	}

	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		status, name, ok := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		if ok && status == "installed" {
			names = append(names, name)
		}
	}
	return domain.NewPackageSet(names...), nil
}

// ExplicitPackages lists packages marked as manually installed.
func (d *Debian) ExplicitPackages(ctx context.Context) (domain.PackageSet, error) {
	out, err := query(ctx, d.runner, d.section, domain.NewCommand("apt-mark", "showmanual"))
	if err != nil {
		return nil, err
	}
	return parseLines(out), nil
}

// Install installs the packages with apt-get.
func (d *Debian) Install(ctx context.Context, packages domain.PackageSet, opts domain.ActionOptions) error {
	args := withFlag([]string{"apt-get", "install"}, opts.NoConfirm, "-y")
	return act(ctx, d.runner, d.section, domain.NewCommand("sudo", args...), packages)
}

// Remove removes the packages and the dependencies that are no longer needed.
func (d *Debian) Remove(ctx context.Context, packages domain.PackageSet, opts domain.ActionOptions) error {
	args := withFlag([]string{"apt-get", "remove", "--auto-remove"}, opts.NoConfirm, "-y")
	return act(ctx, d.runner, d.section, domain.NewCommand("sudo", args...), packages)
}
