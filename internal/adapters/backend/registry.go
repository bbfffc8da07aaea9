package backend

import (
	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports"
)

// Registry implements ports.BackendRegistry over the closed set of kinds.
type Registry struct {
	runner ports.CommandRunner
}

// NewRegistry creates a Registry whose backends run their tools through runner.
func NewRegistry(runner ports.CommandRunner) *Registry {
	return &Registry{runner: runner}
}

// Backends returns a fresh backend per kind not disabled in cfg, in AllKinds order.
func (r *Registry) Backends(cfg *domain.Config) []ports.Backend {
	backends := make([]ports.Backend, 0, len(AllKinds()))
	for _, kind := range AllKinds() {
		if cfg.BackendDisabled(string(kind)) {
			continue
		}
		b, err := New(kind, cfg, r.runner)
		if err != nil {
			continue
		}
		backends = append(backends, b)
	}
	return backends
}
