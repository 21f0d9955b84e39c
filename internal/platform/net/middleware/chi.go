// Package middleware is the HTTP middleware stack: chi and go-chi/cors
// wrappers plus the JSON recover and zerolog access log
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"

	pnet "alaynorm/internal/platform/net"
)

// Middleware is the stdlib middleware shape
type Middleware = func(http.Handler) http.Handler

// RequestID accepts or mints X-Request-ID and hands it to the logger context
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		tag := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := pnet.RequestID(r.Context())
			w.Header().Set(chimw.RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(pnet.WithRequest(r.Context(), id)))
		})
		return chimw.RequestID(tag)
	}
}

// RealIP trusts X-Forwarded-For and X-Real-IP
func RealIP() Middleware { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Compress gzips/deflates responses for clients that accept it
func Compress(level int) Middleware { return chimw.Compress(level) }

// Throttle caps in-flight requests; the rest wait up to wait, then get 429
func Throttle(limit, backlog int, wait time.Duration) Middleware {
	return chimw.ThrottleBacklog(limit, backlog, wait)
}

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// CORSOptions is the subset of go-chi/cors the API exposes
type CORSOptions struct {
	AllowedOrigins []string
	MaxAge         int
}

// CORS allows the normalizer's GET/POST JSON surface from the given origins
func CORS(o CORSOptions) Middleware {
	origins := o.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return chicors.Handler(chicors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", chimw.RequestIDHeader},
		ExposedHeaders: []string{chimw.RequestIDHeader},
		MaxAge:         o.MaxAge,
	})
}

// Options tunes Defaults
type Options struct {
	CORS        CORSOptions
	Timeout     time.Duration
	MaxInFlight int
	SlowRequest time.Duration
}

// Defaults is the API stack in mount order
func Defaults(o Options) []Middleware {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	mws := []Middleware{
		RealIP(),
		RequestID(),
		RecoverJSON,
		AccessLog(AccessLogOptions{Slow: o.SlowRequest}),
		CORS(o.CORS),
		Timeout(o.Timeout),
		Compress(flate.DefaultCompression),
	}
	if o.MaxInFlight > 0 {
		mws = append(mws, Throttle(o.MaxInFlight, o.MaxInFlight*4, 5*time.Second))
	}
	return mws
}
