package reconciler

import (
	"context"

	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports"
)

// diffFunc computes one backend's packages to act on.
type diffFunc func(ctx context.Context, b ports.Backend) (domain.PackageSet, error)

// MissingPackages returns the packages b declares but does not have installed,
// sorted. b must be loaded.
func MissingPackages(ctx context.Context, b ports.Backend) (domain.PackageSet, error) {
	installed, err := b.InstalledPackages(ctx)
	if err != nil {
		return nil, err
	}
	return normalize(b.Declared()).Difference(normalize(installed)), nil
}

// UnmanagedPackages returns the packages b has explicitly installed but no
// group declares, sorted. b must be loaded.
func UnmanagedPackages(ctx context.Context, b ports.Backend) (domain.PackageSet, error) {
	explicit, err := b.ExplicitPackages(ctx)
	if err != nil {
		return nil, err
	}
	return normalize(explicit).Difference(normalize(b.Declared())), nil
}

// normalize re-sorts a set a backend may have built by hand.
func normalize(s domain.PackageSet) domain.PackageSet {
	return domain.NewPackageSet(s...)
}
