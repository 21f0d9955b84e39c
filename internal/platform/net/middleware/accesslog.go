package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"alaynorm/internal/platform/logger"
)

// AccessLogOptions configures AccessLog
type AccessLogOptions struct {
	// Slow logs at warn once a request takes this long; 0 never
	Slow time.Duration
}

var now = time.Now

// AccessLog writes one zerolog line per request with status, size and latency
// 5xx responses log at error
func AccessLog(opt AccessLogOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := now()

			next.ServeHTTP(ww, r)

			elapsed := now().Sub(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			log := logger.C(r.Context())
			evt := log.Info()
			switch {
			case status >= http.StatusInternalServerError:
				evt = log.Error()
			case opt.Slow > 0 && elapsed >= opt.Slow:
				evt = log.Warn().Bool("slow", true)
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", elapsed).
				Msg("request done")
		})
	}
}
