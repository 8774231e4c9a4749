package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cristianbgp/peruvian-holidays/internal/config"
	"github.com/cristianbgp/peruvian-holidays/internal/logger"
)

// Server owns the HTTP listener and its router.
type Server struct {
	cfg        *config.Config
	log        *logger.Logger
	handler    http.Handler
	httpServer *http.Server
}

// NewServer wires handlers, middleware and the http.Server from configuration.
func NewServer(cfg *config.Config, extractor Extractor, log *logger.Logger) (*Server, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	h := NewHandlers(extractor,
		WithLocation(loc),
		WithSource(cfg.Scraper.SourceURL),
	)
	router := NewRouter(h, cfg.Server.CORSAllowedOrigins, log)

	return &Server{
		cfg:     cfg,
		log:     log,
		handler: router,
		httpServer: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens until Shutdown is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.log.Info("Starting server", logger.Fields{
		"port":   s.cfg.Server.Port,
		"source": s.cfg.Scraper.SourceURL,
	})

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving HTTP: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}
	s.log.Info("Server stopped", nil)
	return nil
}
