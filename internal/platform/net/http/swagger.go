package http

import (
	stdhttp "net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger serves doc at /docs/doc.json and the swagger UI at /docs/
func MountSwagger(r Router, doc []byte, enabled bool) {
	if !enabled || len(doc) == 0 {
		return
	}
	r.Get("/docs/doc.json", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(doc)
	})
	ui := httpSwagger.Handler(httpSwagger.URL("/docs/doc.json"))
	r.Get("/docs/*", ui)
}
