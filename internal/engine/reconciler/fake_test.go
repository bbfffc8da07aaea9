package reconciler_test

import (
	"context"
	"sync"

	"go.trai.ch/pacdef/internal/core/domain"
)

// fakeBackend is an in-memory backend whose installs and removals change
// its own state.
type fakeBackend struct {
	section  string
	declared domain.PackageSet

	mu        sync.Mutex
	installed domain.PackageSet
	explicit  domain.PackageSet
	queryErr  error
	actionErr error
	installs  []domain.PackageSet
	removes   []domain.PackageSet

	// wait, when set, blocks queries until it is closed.
	wait <-chan struct{}
	// done, when set, is closed after the first query.
	done     chan struct{}
	doneOnce sync.Once
}

func newFake(section string, installed, explicit []string) *fakeBackend {
	return &fakeBackend{
		section:   section,
		declared:  domain.NewPackageSet(),
		installed: domain.NewPackageSet(installed...),
		explicit:  domain.NewPackageSet(explicit...),
	}
}

func (f *fakeBackend) Section() string { return f.section }

func (f *fakeBackend) Load(groups domain.Groups) { f.declared = groups.Declared(f.section) }

func (f *fakeBackend) Declared() domain.PackageSet { return f.declared }

func (f *fakeBackend) InstalledPackages(ctx context.Context) (domain.PackageSet, error) {
	f.gate(ctx)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.installed, nil
}

func (f *fakeBackend) ExplicitPackages(ctx context.Context) (domain.PackageSet, error) {
	f.gate(ctx)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.explicit, nil
}

func (f *fakeBackend) Install(_ context.Context, packages domain.PackageSet, _ domain.ActionOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.installs = append(f.installs, packages)
	if f.actionErr != nil {
		return f.actionErr
	}
	f.installed = f.installed.Union(packages)
	f.explicit = f.explicit.Union(packages)
	return nil
}

func (f *fakeBackend) Remove(_ context.Context, packages domain.PackageSet, _ domain.ActionOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removes = append(f.removes, packages)
	if f.actionErr != nil {
		return f.actionErr
	}
	f.installed = f.installed.Difference(packages)
	f.explicit = f.explicit.Difference(packages)
	return nil
}

func (f *fakeBackend) gate(ctx context.Context) {
	if f.wait != nil {
		select {
		case <-f.wait:
		case <-ctx.Done():
		}
	}
	if f.done != nil {
		f.doneOnce.Do(func() { close(f.done) })
	}
}

func groupsOf(name string, sections ...domain.Section) domain.Groups {
	return domain.NewGroups(domain.Group{Name: name, Sections: sections})
}
