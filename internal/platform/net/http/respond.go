package http

import (
	"encoding/json"
	stdhttp "net/http"

	"alaynorm/internal/platform/logger"
	pnet "alaynorm/internal/platform/net"
)

// JSON writes v with status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Named("http").Debug().Err(err).Msg("write body")
	}
}

// Response is what return-style handlers produce
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK is a 200 with data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error lets the error pick the status
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a return-style handler
func Handle(h func(*stdhttp.Request) Response) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	reqID := pnet.RequestID(r.Context())

	if err, ok := resp.Body.(error); ok && err != nil {
		env := pnet.Fail(err, reqID)
		if env.StatusCode >= stdhttp.StatusInternalServerError {
			logger.C(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		}
		JSON(w, env.StatusCode, env)
		return
	}
	if resp.Status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}
	env := pnet.OK(resp.Status, resp.Body, reqID)
	JSON(w, env.StatusCode, env)
}
