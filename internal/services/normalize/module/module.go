// Package module wires normalize into the API using modkit
package module

import (
	modkit "alaynorm/internal/modkit"
	"alaynorm/internal/platform/logger"
	phttp "alaynorm/internal/platform/net/http"
	normhttp "alaynorm/internal/services/normalize/http"
	normsvc "alaynorm/internal/services/normalize/service"
)

// Module implements the modkit.Module interface
type Module struct {
	b   modkit.Built
	svc normsvc.Service
}

// New constructs a normalize module over lex
func New(deps modkit.Deps, lex normsvc.LexiconSource, opts ...modkit.Option) modkit.Module {
	b := modkit.Build("normalize", "/normalize", opts...)
	log := deps.Log
	if log == nil {
		log = logger.Named("normalize")
	}
	return &Module{
		b:   b,
		svc: normsvc.New(lex, normsvc.ConfigFrom(deps.Cfg), *log),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r phttp.Router) {
	m.b.Mount(r, func(rr phttp.Router) { normhttp.Register(rr, m.svc) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return m.b.Prefix }
