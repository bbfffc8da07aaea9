package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pacdef/cmd/pacdef/commands"
	"go.trai.ch/pacdef/internal/adapters/telemetry"
	"go.trai.ch/pacdef/internal/app"
	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	configLoader *mocks.MockConfigLoader
	logger       *mocks.MockLogger
	provider     ComponentProvider
	cleaned      *bool
}

func newTestMocks(t *testing.T) *testMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		configLoader: mocks.NewMockConfigLoader(ctrl),
		logger:       mocks.NewMockLogger(ctrl),
		cleaned:      new(bool),
	}
	tracer := telemetry.NewNoOpTracer()
	application := app.New(
		m.configLoader,
		mocks.NewMockGroupLoader(ctrl),
		mocks.NewMockBackendRegistry(ctrl),
		mocks.NewMockConfirmer(ctrl),
		mocks.NewMockRenderer(ctrl),
		mocks.NewMockEditor(ctrl),
		m.logger,
		tracer,
	)
	m.provider = func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: m.logger,
			Tracer: tracer,
		}, func() { *m.cleaned = true }, nil
	}
	return m
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	m := newTestMocks(t)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), m.provider)
	assert.Equal(t, 0, exitCode)
	assert.True(t, *m.cleaned)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	m := newTestMocks(t)
	m.configLoader.EXPECT().Load().Return(nil, domain.ErrConfigDirNotFound)
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigDirNotFound)
	})

	exitCode := run(context.Background(), []string{"groups"}, new(bytes.Buffer), m.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_Options verifies that extra CLI options are applied after the verbose hook.
func TestRun_Options(t *testing.T) {
	m := newTestMocks(t)
	called := false

	exitCode := run(context.Background(), []string{"version", "--verbose"}, new(bytes.Buffer), m.provider,
		commands.WithVerboseHook(func() { called = true }))
	assert.Equal(t, 0, exitCode)
	assert.True(t, called)
}
