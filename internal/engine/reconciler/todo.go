package reconciler

import (
	"context"
	"errors"
	"slices"

	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports"
	"go.trai.ch/zerr"
)

// Entry pairs a backend with the packages to act on.
type Entry struct {
	Backend  ports.Backend
	Packages domain.PackageSet
}

// ToDoPerBackend collects the packages to install or remove, per backend, in
// the order the backends were pushed.
type ToDoPerBackend struct {
	entries []Entry
}

// NewToDoPerBackend creates an empty collection.
func NewToDoPerBackend() *ToDoPerBackend {
	return &ToDoPerBackend{}
}

// Push adds the packages for b. Pushing a backend whose section is already
// present replaces that entry in place.
func (t *ToDoPerBackend) Push(b ports.Backend, packages domain.PackageSet) {
	entry := Entry{Backend: b, Packages: packages}
	for i := range t.entries {
		if t.entries[i].Backend.Section() == b.Section() {
			t.entries[i] = entry
			return
		}
	}
	t.entries = append(t.entries, entry)
}

// Entries returns a copy of the collected entries.
func (t *ToDoPerBackend) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Len returns the number of entries, including empty ones.
func (t *ToDoPerBackend) Len() int {
	return len(t.entries)
}

// NothingToDo reports whether no entry has any package.
func (t *ToDoPerBackend) NothingToDo() bool {
	for _, e := range t.entries {
		if !e.Packages.IsEmpty() {
			return false
		}
	}
	return true
}

// Summary returns the non-empty entries as printable rows.
func (t *ToDoPerBackend) Summary() []domain.SectionPackages {
	rows := make([]domain.SectionPackages, 0, len(t.entries))
	for _, e := range t.entries {
		if e.Packages.IsEmpty() {
			continue
		}
		rows = append(rows, domain.SectionPackages{Section: e.Backend.Section(), Packages: e.Packages})
	}
	return rows
}

// InstallAll installs every entry's packages, one backend after the other.
// It stops at the first failure. Backends handled before it keep their changes.
func (t *ToDoPerBackend) InstallAll(ctx context.Context, opts domain.ActionOptions) error {
	return t.each(ctx, "failed to install packages", func(e Entry) error {
		return e.Backend.Install(ctx, e.Packages, opts)
	})
}

// RemoveAll removes every entry's packages, one backend after the other.
// It stops at the first failure. Backends handled before it keep their changes.
func (t *ToDoPerBackend) RemoveAll(ctx context.Context, opts domain.ActionOptions) error {
	return t.each(ctx, "failed to remove packages", func(e Entry) error {
		return e.Backend.Remove(ctx, e.Packages, opts)
	})
}

func (t *ToDoPerBackend) each(ctx context.Context, msg string, action func(Entry) error) error {
	for _, e := range t.entries {
		if e.Packages.IsEmpty() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := action(e); err != nil {
			return errors.Join(domain.ErrActionFailed,
				zerr.With(zerr.Wrap(err, msg), "section", e.Backend.Section()))
		}
	}
	return nil
}
