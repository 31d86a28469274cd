// Package httpapi exposes the public and admin REST API over net/http.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/salarywatch/backend/internal/admins"
	"github.com/salarywatch/backend/internal/logging"
	"github.com/salarywatch/backend/internal/submissions"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address     string
	logger      logging.Logger
	submissions *submissions.Service
	admins      *admins.Service
	cors        *corsMiddleware
}

func NewServer(address string, l logging.Logger, ss *submissions.Service, as *admins.Service, corsOrigins string) *Server {
	return &Server{
		address:     address,
		logger:      l.With("module", "httpapi"),
		submissions: ss,
		admins:      as,
		cors:        newCORSMiddleware(corsOrigins),
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// the server down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
