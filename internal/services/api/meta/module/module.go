// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "alaynorm/internal/modkit"
	phttp "alaynorm/internal/platform/net/http"

	metahttp "alaynorm/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	b         modkit.Built
	deps      metahttp.Deps
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, service string, opts ...modkit.Option) modkit.Module {
	b := modkit.Build("meta", "/meta", opts...)

	m := &Module{b: b, startedAt: time.Now()}
	m.deps = metahttp.Deps{
		ServiceName:  service,
		StartedAt:    m.startedAt,
		ReadyTimeout: deps.Cfg.MayDuration("API_READY_TIMEOUT", 2*time.Second),
	}
	// typed nil interfaces would read as configured
	if deps.Store != nil {
		if deps.Store.PG != nil {
			m.deps.PG = deps.Store.PG
		}
		if deps.Store.CH != nil {
			m.deps.CH = deps.Store.CH
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r phttp.Router) {
	m.b.Mount(r, func(rr phttp.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return m.b.Prefix }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
