// Package editor opens group files in the user's editor.
package editor

import (
	"context"
	"errors"
	"os"
	"strings"

	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultEditor is used when neither the config nor the environment names one.
const DefaultEditor = "vi"

// Editor implements ports.Editor by running the editor attached to the terminal.
type Editor struct {
	runner ports.CommandRunner
	getenv func(string) string
}

// New creates an Editor running through runner.
func New(runner ports.CommandRunner) *Editor {
	return &Editor{runner: runner, getenv: os.Getenv}
}

// Edit opens all files in a single editor invocation.
func (e *Editor) Edit(ctx context.Context, cfg *domain.Config, files []string) error {
	name, args := e.command(cfg)
	if _, err := e.runner.LookPath(name); err != nil {
		return errors.Join(domain.ErrEditorFailed, zerr.With(zerr.Wrap(err, "editor not found"), "editor", name))
	}

	cmd := domain.NewCommand(name, append(args, files...)...)
	if err := e.runner.Run(ctx, cmd); err != nil {
		return errors.Join(domain.ErrEditorFailed, zerr.With(err, "editor", name))
	}
	return nil
}

// command resolves the editor from cfg.Editor, $VISUAL or $EDITOR, in that order.
// The value may carry arguments, e.g. "code --wait".
func (e *Editor) command(cfg *domain.Config) (string, []string) {
	for _, candidate := range []string{cfg.Editor, e.getenv("VISUAL"), e.getenv("EDITOR")} {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields[0], fields[1:]
		}
	}
	return DefaultEditor, nil
}
