package ports

import (
	"context"

	"go.trai.ch/pacdef/internal/core/domain"
)

//go:generate mockgen -source=interaction.go -destination=mocks/mock_interaction.go -package=mocks

// Confirmer asks the user whether to proceed with an action.
type Confirmer interface {
	// Confirm returns true if the user agreed.
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Editor opens files in the user's editor.
type Editor interface {
	// Edit blocks until the editor exits. cfg.Editor takes precedence over the environment.
	Edit(ctx context.Context, cfg *domain.Config, files []string) error
}

// Renderer presents results to the user.
type Renderer interface {
	// Summary prints packages per backend below an optional header.
	// Entries without packages are skipped.
	Summary(header string, entries []domain.SectionPackages)

	// List prints one item per line.
	List(items []string)

	// Message prints a single line.
	Message(msg string)
}
