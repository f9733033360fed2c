package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/bobmcallan/vibeterms/internal/app"
	"github.com/bobmcallan/vibeterms/internal/common"
)

// Server wraps the HTTP server and application reference.
type Server struct {
	app            *app.App
	server         *http.Server
	mux            *http.ServeMux
	logger         *common.Logger
	generateLimits *rate.Limiter
}

// NewServer creates a new HTTP REST API server.
func NewServer(a *app.App) *Server {
	s := &Server{
		app:            a,
		logger:         a.Logger,
		generateLimits: newGenerateLimiter(a.Config.Limits),
	}

	s.mux = http.NewServeMux()
	s.registerRoutes(s.mux)

	handler := applyMiddleware(s.mux, a.Logger)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// newGenerateLimiter converts the per-minute budget into a token bucket.
// A non-positive budget disables limiting.
func newGenerateLimiter(cfg common.LimitsConfig) *rate.Limiter {
	if cfg.GeneratePerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := cfg.GenerateBurst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.GeneratePerMinute)), burst)
}

// Mount registers an extra handler (e.g. the MCP endpoint) behind the
// middleware stack.
func (s *Server) Mount(pattern string, h http.Handler) {
	s.mux.Handle(pattern, h)
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	s.logger.Info().
		Str("addr", s.server.Addr).
		Msg("Starting REST API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
