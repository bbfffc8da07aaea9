package reconciler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/engine/reconciler"
)

func TestToDoPerBackend_NothingToDo(t *testing.T) {
	todo := reconciler.NewToDoPerBackend()
	assert.True(t, todo.NothingToDo(), "no entries")

	todo.Push(newFake("pkg", nil, nil), domain.NewPackageSet())
	todo.Push(newFake("lang", nil, nil), domain.NewPackageSet())
	assert.True(t, todo.NothingToDo(), "only empty entries")
	assert.Empty(t, todo.Summary())

	todo.Push(newFake("lang", nil, nil), domain.NewPackageSet("black"))
	assert.False(t, todo.NothingToDo())
}

func TestToDoPerBackend_TwoBackendScenario(t *testing.T) {
	todo := reconciler.NewToDoPerBackend()
	todo.Push(newFake("pkg", nil, nil), domain.NewPackageSet("vim"))
	todo.Push(newFake("lang", nil, nil), domain.NewPackageSet())

	assert.False(t, todo.NothingToDo())
	assert.Equal(t, 2, todo.Len())
	assert.Equal(t, []domain.SectionPackages{
		{Section: "pkg", Packages: domain.PackageSet{"vim"}},
	}, todo.Summary())
}

func TestToDoPerBackend_PushReplacesSameSection(t *testing.T) {
	todo := reconciler.NewToDoPerBackend()
	todo.Push(newFake("pkg", nil, nil), domain.NewPackageSet("a"))
	todo.Push(newFake("lang", nil, nil), domain.NewPackageSet("b"))
	todo.Push(newFake("pkg", nil, nil), domain.NewPackageSet("c"))

	entries := todo.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "pkg", entries[0].Backend.Section())
	assert.Equal(t, domain.PackageSet{"c"}, entries[0].Packages)
}

func TestToDoPerBackend_InstallAll(t *testing.T) {
	first := newFake("pkg", nil, nil)
	empty := newFake("empty", nil, nil)
	second := newFake("lang", nil, nil)

	todo := reconciler.NewToDoPerBackend()
	todo.Push(first, domain.NewPackageSet("vim"))
	todo.Push(empty, domain.NewPackageSet())
	todo.Push(second, domain.NewPackageSet("black"))

	require.NoError(t, todo.InstallAll(t.Context(), domain.ActionOptions{}))

	assert.Equal(t, []domain.PackageSet{{"vim"}}, first.installs)
	assert.Empty(t, empty.installs)
	assert.Equal(t, []domain.PackageSet{{"black"}}, second.installs)
	assert.True(t, first.installed.Contains("vim"))
}

func TestToDoPerBackend_StopsAtFirstFailure(t *testing.T) {
	done := newFake("pkg", []string{"vim"}, []string{"vim"})
	failing := newFake("lang", nil, nil)
	failing.actionErr = errors.New("exit status 1")
	skipped := newFake("crate", []string{"ripgrep"}, []string{"ripgrep"})

	todo := reconciler.NewToDoPerBackend()
	todo.Push(done, domain.NewPackageSet("vim"))
	todo.Push(failing, domain.NewPackageSet("black"))
	todo.Push(skipped, domain.NewPackageSet("ripgrep"))

	err := todo.RemoveAll(t.Context(), domain.ActionOptions{NoConfirm: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrActionFailed)
	assert.Contains(t, err.Error(), "exit status 1")

	assert.Len(t, done.removes, 1)
	assert.False(t, done.installed.Contains("vim"), "completed backend is not rolled back")
	assert.Empty(t, skipped.removes)
	assert.True(t, skipped.installed.Contains("ripgrep"))
}

func TestToDoPerBackend_CanceledContext(t *testing.T) {
	b := newFake("pkg", nil, nil)
	todo := reconciler.NewToDoPerBackend()
	todo.Push(b, domain.NewPackageSet("vim"))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := todo.InstallAll(ctx, domain.ActionOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, b.installs)
}
