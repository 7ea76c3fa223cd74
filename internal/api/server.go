package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ServerConfig holds the listener settings of the public API server.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server is the public HTTP API server.
type Server struct {
	cfg         ServerConfig
	router      *chi.Mux
	rateLimiter *IPRateLimiter
	httpServer  *http.Server
}

// NewServer creates the API server. The router is built here, but nothing
// listens until Start is called.
//
// For testing HTTP endpoints, use NewRouter() directly.
func NewServer(cfg ServerConfig, routerCfg RouterConfig) *Server {
	if routerCfg.RateLimiter == nil {
		rlCfg := DefaultRateLimitConfig
		if routerCfg.RateLimitConfig != nil {
			rlCfg = *routerCfg.RateLimitConfig
		}
		routerCfg.RateLimiter = NewIPRateLimiter(rlCfg)
	}

	s := &Server{
		cfg:         cfg,
		rateLimiter: routerCfg.RateLimiter,
		router:      NewRouter(routerCfg),
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}
	return s
}

// Start listens on the configured address and serves until Shutdown.
// It returns nil after a graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve serves on an existing listener.
func (s *Server) Serve(ln net.Listener) error {
	log.Info().Str("addr", ln.Addr().String()).Msg("api server starting")

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Router returns the HTTP handler for use with httptest.
func (s *Server) Router() http.Handler {
	return s.router
}

// Shutdown drains in-flight requests and stops background workers.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	s.rateLimiter.Stop()
	return err
}
