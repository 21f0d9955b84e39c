// Package api provides the HTTP API for the application
package api

import (
	_ "embed"

	"alaynorm/internal/modkit"
	"alaynorm/internal/platform/config"
	"alaynorm/internal/platform/logger"
	phttp "alaynorm/internal/platform/net/http"
	"alaynorm/internal/platform/net/middleware"
	"alaynorm/internal/platform/store"

	metamod "alaynorm/internal/services/api/meta/module"
	normmod "alaynorm/internal/services/normalize/module"
	normsvc "alaynorm/internal/services/normalize/service"
)

//go:embed openapi.json
var openAPI []byte

// ServiceName is what meta endpoints and logs call this binary
const ServiceName = "alaynorm-api"

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Lexicon        normsvc.LexiconSource
	EnableSwagger  bool
	EnableProfiler bool
}

// StackFrom reads the middleware settings under API_
func StackFrom(c config.Conf) middleware.Options {
	return middleware.Options{
		CORS: middleware.CORSOptions{
			AllowedOrigins: c.MayCSV("API_CORS_ORIGINS", nil),
			MaxAge:         c.MayInt("API_CORS_MAX_AGE", 300),
		},
		Timeout:     c.MayDuration("API_REQUEST_TIMEOUT", 0),
		MaxInFlight: c.MayInt("API_MAX_IN_FLIGHT", 0),
		SlowRequest: c.MayDuration("API_SLOW_REQUEST", 0),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log:   opt.Logger,
		Cfg:   opt.Config,
		Store: opt.Store,
	}

	mods := []modkit.Module{
		metamod.New(deps, ServiceName),
		normmod.New(deps, opt.Lexicon),
	}

	phttp.MountSwagger(r, openAPI, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	modkit.MountAPI(r, middleware.Defaults(StackFrom(opt.Config)), mods...)
}
