package server

import (
	"context"
	"net/http"
	"time"

	"blog-backend/internal/config"
	"blog-backend/internal/logger"
)

// Server wraps the HTTP server serving the API.
type Server struct {
	server   *http.Server
	certFile string
	keyFile  string
}

// New creates a server for the given handler.
func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		server: &http.Server{
			Addr:         ":" + cfg.Server.ListenPort,
			Handler:      handler,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		certFile: cfg.Server.CertFile,
		keyFile:  cfg.Server.KeyFile,
	}
}

// Start starts the server. It blocks until the server stops.
func (s *Server) Start() error {
	logger.Infof("Starting HTTP server on %s", s.server.Addr)

	if s.certFile != "" && s.keyFile != "" {
		logger.Infof("Using TLS with cert: %s, key: %s", s.certFile, s.keyFile)
		return s.server.ListenAndServeTLS(s.certFile, s.keyFile)
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
