// Package http mounts handlers on chi without leaking chi into services
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler is the plain handler func every route takes
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the surface services mount against
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))
	Mux() http.Handler
}

// chiRouter adapts any chi.Router, root or sub
type chiRouter struct{ r chi.Router }

// AdaptChi wraps a chi router
func AdaptChi(r chi.Router) Router { return chiRouter{r: r} }

func (c chiRouter) Get(p string, h Handler)                   { c.r.Method(http.MethodGet, p, http.HandlerFunc(h)) }
func (c chiRouter) Post(p string, h Handler)                  { c.r.Method(http.MethodPost, p, http.HandlerFunc(h)) }
func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }
func (c chiRouter) Mux() http.Handler                         { return c.r }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}
