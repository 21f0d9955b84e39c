package middleware

import (
	"net/http"
	"runtime/debug"

	perr "alaynorm/internal/platform/errors"
	"alaynorm/internal/platform/logger"
	pnet "alaynorm/internal/platform/net"
	phttp "alaynorm/internal/platform/net/http"
)

// RecoverJSON turns a handler panic into a 500 envelope and logs the stack
// http.ErrAbortHandler is re-panicked so net/http can drop the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			env := pnet.Fail(perr.PanicErrf("internal error"), pnet.RequestID(r.Context()))
			phttp.JSON(w, env.StatusCode, env)
		}()
		next.ServeHTTP(w, r)
	})
}
