package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Server wraps the HTTP listener so main can stop it cleanly and run the
// shutdown hooks (snapshot export, pool close) afterwards.
type Server struct {
	http *http.Server
	log  *zap.Logger
}

func NewServer(route *chi.Mux, port string, log *zap.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      route,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		log: log,
	}
}

// Start blocks until the listener fails or Shutdown is called. A closed
// listener after Shutdown is not an error.
func (s *Server) Start() error {
	s.log.Info("Server listening", zap.String("addr", s.http.Addr))

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down server")
	return s.http.Shutdown(ctx)
}
