// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/pacdef/internal/core/domain"
)

// Backend abstracts a single package-management ecosystem.
//
// A Backend instance is single-use per session: it starts not loaded, is loaded once
// from the full set of groups and is then queried or mutated.
//
//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type Backend interface {
	// Section returns the stable identifier of the backend (e.g. "arch").
	// Group files declare packages for the backend under a section of this name.
	Section() string

	// Load extracts the packages declared for this backend from all groups.
	// It has no side effect on the system and may be called more than once.
	Load(groups domain.Groups)

	// Declared returns the packages collected by Load.
	Declared() domain.PackageSet

	// InstalledPackages queries every package the backend currently has installed.
	InstalledPackages(ctx context.Context) (domain.PackageSet, error)

	// ExplicitPackages queries the installed packages that were requested by the user,
	// excluding those pulled in as dependencies.
	ExplicitPackages(ctx context.Context) (domain.PackageSet, error)

	// Install installs exactly the given packages. An empty set is a no-op.
	Install(ctx context.Context, packages domain.PackageSet, opts domain.ActionOptions) error

	// Remove removes the given packages, together with their now unneeded dependencies
	// where the backend supports it. An empty set is a no-op.
	Remove(ctx context.Context, packages domain.PackageSet, opts domain.ActionOptions) error
}

// BackendRegistry enumerates the known backends.
type BackendRegistry interface {
	// Backends returns one fresh, not yet loaded instance per backend enabled
	// in cfg, always in the same order.
	Backends(cfg *domain.Config) []Backend
}
