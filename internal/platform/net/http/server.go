package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"alaynorm/internal/platform/config"
	"alaynorm/internal/platform/logger"
)

// Server is chi behind a stdlib http.Server
type Server struct {
	addr  string
	grace time.Duration
	mux   *chi.Mux
	srv   *stdhttp.Server
}

// NewServer reads API_PORT, API_READ_TIMEOUT, API_WRITE_TIMEOUT and
// API_SHUTDOWN_GRACE from cfg; opts see the mux before any route is added
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("API_PORT", ":4000")
	if addr != "" && addr[0] != ':' {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			addr = ":" + addr
		}
	}
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr:  addr,
		grace: cfg.MayDuration("API_SHUTDOWN_GRACE", 10*time.Second),
		mux:   m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       cfg.MayDuration("API_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:      cfg.MayDuration("API_WRITE_TIMEOUT", 30*time.Second),
		},
	}
}

// Router returns the mount surface
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Handler returns the root handler, for tests
func (s *Server) Handler() stdhttp.Handler { return s.mux }

// Addr is the listen address
func (s *Server) Addr() string { return s.addr }

// Run serves until ctx is done, then drains for the grace period
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.addr).Msg("http listening")
		errc <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	log.Info().Dur("grace", s.grace).Msg("http draining")
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	return nil
}
