package shell_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacdef/internal/adapters/shell"
	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRunner(t *testing.T, stdout, stderr *bytes.Buffer) *shell.Runner {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	return shell.NewRunner(log, shell.WithStdio(nil, stdout, stderr))
}

func TestRunner_Output(t *testing.T) {
	r := newRunner(t, &bytes.Buffer{}, &bytes.Buffer{})

	out, err := r.Output(t.Context(), domain.NewCommand("sh", "-c", "echo base; echo vim"))
	require.NoError(t, err)
	assert.Equal(t, "base\nvim\n", string(out))
}

func TestRunner_Output_StderrNotCaptured(t *testing.T) {
	r := newRunner(t, &bytes.Buffer{}, &bytes.Buffer{})

	out, err := r.Output(t.Context(), domain.NewCommand("sh", "-c", "echo warning >&2; echo pkg"))
	require.NoError(t, err)
	assert.Equal(t, "pkg\n", string(out))
}

func TestRunner_Output_NonZeroExit(t *testing.T) {
	r := newRunner(t, &bytes.Buffer{}, &bytes.Buffer{})

	_, err := r.Output(t.Context(), domain.NewCommand("sh", "-c", "echo boom >&2; exit 3"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.Contains(t, err.Error(), "command failed")
}

func TestRunner_Output_MissingTool(t *testing.T) {
	r := newRunner(t, &bytes.Buffer{}, &bytes.Buffer{})

	_, err := r.Output(t.Context(), domain.NewCommand("pacdef-test-no-such-tool", "-Qq"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestRunner_Run_InheritsStdio(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := newRunner(t, &stdout, &stderr)

	err := r.Run(t.Context(), domain.NewCommand("sh", "-c", "echo installing; echo note >&2"))
	require.NoError(t, err)
	assert.Equal(t, "installing\n", stdout.String())
	assert.Equal(t, "note\n", stderr.String())
}

func TestRunner_Run_Failure(t *testing.T) {
	r := newRunner(t, &bytes.Buffer{}, &bytes.Buffer{})

	err := r.Run(t.Context(), domain.NewCommand("sh", "-c", "exit 1"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrBackendUnavailable))
}

func TestRunner_LookPath(t *testing.T) {
	r := newRunner(t, &bytes.Buffer{}, &bytes.Buffer{})

	path, err := r.LookPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = r.LookPath("pacdef-test-no-such-tool")
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}
