package ports

import (
	"context"

	"go.trai.ch/pacdef/internal/core/domain"
)

// CommandRunner runs external programs on behalf of backends and the editor.
//
//go:generate mockgen -source=command_runner.go -destination=mocks/mock_command_runner.go -package=mocks
type CommandRunner interface {
	// Output runs the command and returns its standard output.
	// A missing executable yields an error matching domain.ErrBackendUnavailable.
	Output(ctx context.Context, cmd domain.Command) ([]byte, error)

	// Run runs the command attached to the user's terminal.
	Run(ctx context.Context, cmd domain.Command) error

	// LookPath resolves an executable name to its path.
	LookPath(name string) (string, error)
}
