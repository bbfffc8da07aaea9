// Package reconciler compares declared packages with the state of every
// backend and drives the confirmed install or remove actions.
package reconciler

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

const (
	// InstallHeader introduces the summary shown before installing.
	InstallHeader = "Would install the following packages:"
	// RemoveHeader introduces the summary shown before removing.
	RemoveHeader = "Would remove the following packages and their dependencies:"
	// ConfirmPrompt is asked before any action is taken.
	ConfirmPrompt = "Continue?"
)

// Reconciler runs the sync, clean and unmanaged workflows.
type Reconciler struct {
	registry  ports.BackendRegistry
	confirmer ports.Confirmer
	renderer  ports.Renderer
	logger    ports.Logger
	tracer    ports.Tracer
}

// New creates a Reconciler with the given dependencies.
func New(
	registry ports.BackendRegistry,
	confirmer ports.Confirmer,
	renderer ports.Renderer,
	logger ports.Logger,
	tracer ports.Tracer,
) *Reconciler {
	return &Reconciler{
		registry:  registry,
		confirmer: confirmer,
		renderer:  renderer,
		logger:    logger,
		tracer:    tracer,
	}
}

// CollectMissing loads every enabled backend and collects its missing packages.
func (r *Reconciler) CollectMissing(ctx context.Context, cfg *domain.Config, groups domain.Groups) *ToDoPerBackend {
	return r.collect(ctx, cfg, groups, "missing", MissingPackages)
}

// CollectUnmanaged loads every enabled backend and collects its unmanaged packages.
func (r *Reconciler) CollectUnmanaged(ctx context.Context, cfg *domain.Config, groups domain.Groups) *ToDoPerBackend {
	return r.collect(ctx, cfg, groups, "unmanaged", UnmanagedPackages)
}

// Sync installs the declared packages that are missing.
func (r *Reconciler) Sync(
	ctx context.Context,
	cfg *domain.Config,
	groups domain.Groups,
	opts domain.ActionOptions,
) (domain.Outcome, error) {
	todo := r.CollectMissing(ctx, cfg, groups)
	return r.apply(ctx, todo, InstallHeader, opts, todo.InstallAll)
}

// Clean removes the explicitly installed packages no group declares.
func (r *Reconciler) Clean(
	ctx context.Context,
	cfg *domain.Config,
	groups domain.Groups,
	opts domain.ActionOptions,
) (domain.Outcome, error) {
	todo := r.CollectUnmanaged(ctx, cfg, groups)
	return r.apply(ctx, todo, RemoveHeader, opts, todo.RemoveAll)
}

// Unmanaged prints the unmanaged packages of every backend.
func (r *Reconciler) Unmanaged(ctx context.Context, cfg *domain.Config, groups domain.Groups) {
	todo := r.CollectUnmanaged(ctx, cfg, groups)
	r.renderer.Summary("", todo.Summary())
}

// apply shows the summary, asks for confirmation and runs action.
// An empty collection ends the run before anything is shown; a declined
// confirmation ends it without touching any backend.
func (r *Reconciler) apply(
	ctx context.Context,
	todo *ToDoPerBackend,
	header string,
	opts domain.ActionOptions,
	action func(context.Context, domain.ActionOptions) error,
) (domain.Outcome, error) {
	if todo.NothingToDo() {
		return domain.OutcomeNothingToDo, nil
	}

	r.renderer.Summary(header, todo.Summary())

	if !opts.NoConfirm {
		ok, err := r.confirmer.Confirm(ctx, ConfirmPrompt)
		if err != nil {
			return domain.OutcomeDeclined, err
		}
		if !ok {
			return domain.OutcomeDeclined, nil
		}
	}

	ctx, span := r.tracer.Start(ctx, "execute")
	defer span.End()

	if err := action(ctx, opts); err != nil {
		span.RecordError(err)
		return domain.OutcomeDone, err
	}
	return domain.OutcomeDone, nil
}

type collected struct {
	backend  ports.Backend
	packages domain.PackageSet
	err      error
}

// collect queries the backends concurrently. Results are kept in registry
// order; a backend that fails is reported and left out.
func (r *Reconciler) collect(
	ctx context.Context,
	cfg *domain.Config,
	groups domain.Groups,
	kind string,
	diff diffFunc,
) *ToDoPerBackend {
	ctx, span := r.tracer.Start(ctx, "collect "+kind)
	defer span.End()

	backends := r.registry.Backends(cfg)
	r.warnUnknownSections(cfg, groups, backends)

	results := make([]collected, len(backends))

	var g errgroup.Group
	g.SetLimit(parallelism(cfg))
	for i, b := range backends {
		g.Go(func() error {
			results[i] = r.collectOne(ctx, groups, b, diff)
			return nil
		})
	}
	_ = g.Wait()

	todo := NewToDoPerBackend()
	for _, res := range results {
		if res.err != nil {
			r.logger.Warn(fmt.Sprintf("skipping backend '%s': %s", res.backend.Section(), oneLine(res.err)))
			continue
		}
		todo.Push(res.backend, res.packages)
	}

	span.SetAttribute("backends", todo.Len())
	return todo
}

func (r *Reconciler) collectOne(ctx context.Context, groups domain.Groups, b ports.Backend, diff diffFunc) collected {
	ctx, span := r.tracer.Start(ctx, "backend "+b.Section())
	defer span.End()

	b.Load(groups)
	packages, err := diff(ctx, b)
	if err != nil {
		span.RecordError(err)
		return collected{backend: b, err: err}
	}

	span.SetAttribute("packages", packages.Len())
	return collected{backend: b, packages: packages}
}

// warnUnknownSections reports group sections that belong to no backend.
func (r *Reconciler) warnUnknownSections(cfg *domain.Config, groups domain.Groups, backends []ports.Backend) {
	for _, section := range groups.SectionNames() {
		if cfg.BackendDisabled(section) {
			continue
		}
		known := slices.ContainsFunc(backends, func(b ports.Backend) bool {
			return b.Section() == section
		})
		if !known {
			r.logger.Warn(fmt.Sprintf("ignoring unknown section '%s' in group files", section))
		}
	}
}

func parallelism(cfg *domain.Config) int {
	if cfg.Parallelism > 0 {
		return cfg.Parallelism
	}
	return runtime.NumCPU()
}

// oneLine flattens joined error messages for a single log line.
func oneLine(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", ": ")
}
