// Package modkit is the small contract API modules implement and the
// helpers main uses to wire them
package modkit

import (
	"net/http"

	"alaynorm/internal/platform/config"
	"alaynorm/internal/platform/logger"
	phttp "alaynorm/internal/platform/net/http"
	"alaynorm/internal/platform/store"
	str "alaynorm/internal/platform/strings"
)

// Module mounts its routes under Prefix and exposes ports for cross wiring
type Module interface {
	Name() string
	Prefix() string
	MountRoutes(r phttp.Router)
	Ports() any
}

// Deps are the shared dependencies modules are built from
// Store may be nil or have nil backends
type Deps struct {
	Log   *logger.Logger
	Cfg   config.Conf
	Store *store.Store
}

// Option mutates a module's build settings
type Option func(*Built)

// Built is the resolved option set
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Register func(phttp.Router)
}

// WithName overrides the module name
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix overrides the mount prefix
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares adds per module middleware, applied in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithRegister mounts extra routes next to the module's own
func WithRegister(fn func(phttp.Router)) Option {
	return func(b *Built) { b.Register = fn }
}

// Build applies opts over the default name and prefix
func Build(name, prefix string, opts ...Option) Built {
	b := Built{Name: name, Prefix: prefix}
	for _, o := range opts {
		o(&b)
	}
	b.Name = str.MustString(b.Name, "module name")
	b.Prefix = str.MustPrefix(b.Prefix)
	return b
}

// Mount routes a sub router at b.Prefix, then calls own and any WithRegister hook
func (b Built) Mount(r phttp.Router, own func(phttp.Router)) {
	r.Route(b.Prefix, func(sub phttp.Router) {
		if len(b.Mw) > 0 {
			sub.Use(b.Mw...)
		}
		own(sub)
		if b.Register != nil {
			b.Register(sub)
		}
	})
}

// MountAPI routes /v1 with stack applied and mounts each module under it,
// registering its ports by name
func MountAPI(r phttp.Router, stack []func(http.Handler) http.Handler, mods ...Module) {
	r.Route("/v1", func(v1 phttp.Router) {
		if len(stack) > 0 {
			v1.Use(stack...)
		}
		for _, m := range mods {
			Register(m.Name(), m.Ports())
			m.MountRoutes(v1)
		}
	})
}
