// Package server exposes the statement engine over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/finfold/bankstat/internal/config"
	"github.com/finfold/bankstat/internal/engine"
)

// shutdownGrace bounds how long in-flight requests get on shutdown.
const shutdownGrace = 10 * time.Second

// Server wires the parse engine into an HTTP API.
type Server struct {
	engine *engine.Engine
	router *mux.Router
	cfg    config.ServerConfig
}

// New builds a Server around the given engine.
func New(eng *engine.Engine, cfg config.ServerConfig) *Server {
	s := &Server{engine: eng, cfg: cfg}

	r := mux.NewRouter()
	r.Use(s.requestLogger)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/statements/parse", s.handleParse).Methods(http.MethodPost)
	s.router = r

	return s
}

// Handler returns the routing handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
