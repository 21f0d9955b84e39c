package http

import (
	stdhttp "net/http"

	"alaynorm/internal/platform/net/http/bind"
)

// JSONHandler binds and validates a T body, then wraps fn's result
func JSONHandler[T any](fn func(*stdhttp.Request, T) (any, error), opts ...bind.JSONOptions) Handler {
	return Handle(func(r *stdhttp.Request) Response {
		in, err := bind.ParseJSON[T](r, opts...)
		if err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}

// NoBodyHandler wraps fn's result without reading a body
func NoBodyHandler(fn func(*stdhttp.Request) (any, error)) Handler {
	return Handle(func(r *stdhttp.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}

// GetJSON mounts fn on GET path
func GetJSON(r Router, path string, fn func(*stdhttp.Request) (any, error)) {
	r.Get(path, NoBodyHandler(fn))
}

// PostJSON mounts fn on POST path with a bound T body
func PostJSON[T any](r Router, path string, fn func(*stdhttp.Request, T) (any, error), opts ...bind.JSONOptions) {
	r.Post(path, JSONHandler(fn, opts...))
}
