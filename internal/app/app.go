// Package app implements the application layer for pacdef.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports"
	"go.trai.ch/pacdef/internal/engine/reconciler"
	"go.trai.ch/zerr"
)

// App wires the loaders and the reconciler into the user-facing actions.
type App struct {
	configLoader ports.ConfigLoader
	groupLoader  ports.GroupLoader
	editor       ports.Editor
	renderer     ports.Renderer
	logger       ports.Logger
	tracer       ports.Tracer
	reconciler   *reconciler.Reconciler
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	groupLoader ports.GroupLoader,
	registry ports.BackendRegistry,
	confirmer ports.Confirmer,
	renderer ports.Renderer,
	editor ports.Editor,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: configLoader,
		groupLoader:  groupLoader,
		editor:       editor,
		renderer:     renderer,
		logger:       logger,
		tracer:       tracer,
		reconciler:   reconciler.New(registry, confirmer, renderer, logger, tracer),
	}
}

// Sync installs every declared package that is missing from its backend.
func (a *App) Sync(ctx context.Context, opts domain.ActionOptions) (domain.Outcome, error) {
	ctx, span := a.tracer.Start(ctx, "sync")
	defer span.End()

	cfg, groups, err := a.load(ctx)
	if err != nil {
		span.RecordError(err)
		return domain.OutcomeNothingToDo, err
	}

	outcome, err := a.reconciler.Sync(ctx, cfg, groups, opts)
	if err != nil {
		span.RecordError(err)
		return outcome, zerr.Wrap(err, "sync failed")
	}
	span.SetAttribute("outcome", outcome.String())
	a.report(outcome)
	return outcome, nil
}

// Clean removes every explicitly installed package that no group declares.
func (a *App) Clean(ctx context.Context, opts domain.ActionOptions) (domain.Outcome, error) {
	ctx, span := a.tracer.Start(ctx, "clean")
	defer span.End()

	cfg, groups, err := a.load(ctx)
	if err != nil {
		span.RecordError(err)
		return domain.OutcomeNothingToDo, err
	}

	outcome, err := a.reconciler.Clean(ctx, cfg, groups, opts)
	if err != nil {
		span.RecordError(err)
		return outcome, zerr.Wrap(err, "clean failed")
	}
	span.SetAttribute("outcome", outcome.String())
	a.report(outcome)
	return outcome, nil
}

// Unmanaged prints the explicitly installed packages no group declares.
func (a *App) Unmanaged(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "unmanaged")
	defer span.End()

	cfg, groups, err := a.load(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	a.reconciler.Unmanaged(ctx, cfg, groups)
	return nil
}

// Groups prints the names of all groups in sorted order.
func (a *App) Groups(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "groups")
	defer span.End()

	_, groups, err := a.load(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttribute("groups", len(groups))
	a.renderer.List(groups.Names())
	return nil
}

// Edit opens the named group files in the configured editor.
// Every name must refer to an existing group file.
func (a *App) Edit(ctx context.Context, names []string) error {
	ctx, span := a.tracer.Start(ctx, "edit")
	defer span.End()

	if len(names) == 0 {
		return domain.ErrNoGroupsSpecified
	}

	cfg, err := a.configLoader.Load()
	if err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "failed to load configuration")
	}

	files := make([]string, 0, len(names))
	for _, name := range names {
		path := cfg.Paths.GroupFile(name)
		if err := groupExists(path); err != nil {
			span.RecordError(err)
			return zerr.With(err, "group", name)
		}
		files = append(files, path)
	}

	a.logger.Debug(fmt.Sprintf("editing %d group file(s)", len(files)))
	if err := a.editor.Edit(ctx, cfg, files); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// report tells the user about runs that changed nothing.
func (a *App) report(outcome domain.Outcome) {
	if outcome != domain.OutcomeDone {
		a.renderer.Message(outcome.String())
	}
}

func (a *App) load(ctx context.Context) (*domain.Config, domain.Groups, error) {
	_, span := a.tracer.Start(ctx, "load")
	defer span.End()

	cfg, err := a.configLoader.Load()
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	groups, err := a.groupLoader.Load(cfg)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load groups")
	}

	span.SetAttribute("groups", len(groups))
	return cfg, groups, nil
}

func groupExists(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return zerr.With(zerr.Wrap(domain.ErrGroupNotFound, "group file does not exist"), "path", path)
	case err != nil:
		return zerr.With(zerr.Wrap(err, "failed to inspect group file"), "path", path)
	case info.IsDir():
		return zerr.With(zerr.Wrap(domain.ErrGroupNotFound, "group is a directory"), "path", path)
	}
	return nil
}
