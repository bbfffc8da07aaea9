package editor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacdef/internal/adapters/editor"
	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestEditor_Edit_Resolution(t *testing.T) {
	files := []string{"/g/base", "/g/dev"}

	tests := []struct {
		name       string
		configured string
		env        map[string]string
		want       domain.Command
	}{
		{
			name:       "config wins",
			configured: "nvim",
			env:        map[string]string{"VISUAL": "code", "EDITOR": "nano"},
			want:       domain.NewCommand("nvim", "/g/base", "/g/dev"),
		},
		{
			name: "visual before editor",
			env:  map[string]string{"VISUAL": "code --wait", "EDITOR": "nano"},
			want: domain.NewCommand("code", "--wait", "/g/base", "/g/dev"),
		},
		{
			name: "editor",
			env:  map[string]string{"EDITOR": "nano"},
			want: domain.NewCommand("nano", "/g/base", "/g/dev"),
		},
		{
			name: "fallback",
			env:  map[string]string{"EDITOR": "   "},
			want: domain.NewCommand(editor.DefaultEditor, "/g/base", "/g/dev"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockCommandRunner(ctrl)
			runner.EXPECT().LookPath(tt.want.Name).Return("/usr/bin/"+tt.want.Name, nil)
			runner.EXPECT().Run(gomock.Any(), tt.want).Return(nil)

			cfg := domain.DefaultConfig()
			cfg.Editor = tt.configured

			e := editor.NewWithEnv(editor.New(runner), tt.env)
			require.NoError(t, e.Edit(t.Context(), &cfg, files))
		})
	}
}

func TestEditor_Edit_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().LookPath("vim").Return("/usr/bin/vim", nil)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(errors.New("exit status 1"))

	cfg := domain.DefaultConfig()
	cfg.Editor = "vim"

	err := editor.New(runner).Edit(t.Context(), &cfg, []string{"/g/base"})
	assert.ErrorIs(t, err, domain.ErrEditorFailed)
}

func TestEditor_Edit_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().LookPath("nope").Return("", errors.Join(domain.ErrBackendUnavailable, errors.New("not found")))

	cfg := domain.DefaultConfig()
	cfg.Editor = "nope"

	// The editor must not be started.
	err := editor.New(runner).Edit(t.Context(), &cfg, []string{"/g/base"})
	require.ErrorIs(t, err, domain.ErrEditorFailed)
	assert.Contains(t, err.Error(), "editor not found")
}
