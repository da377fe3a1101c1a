// Package server provides the wiremap HTTP API.
//
// The API exposes document CRUD, connection editing, drag gesture state for
// remote editors, and rendered previews. All endpoints speak JSON except the
// preview endpoints, which return image data.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wiremaphq/wiremap/pkg/errors"
	"github.com/wiremaphq/wiremap/pkg/pipeline"
	"github.com/wiremaphq/wiremap/pkg/store"
)

// Server hosts the wiremap HTTP API.
type Server struct {
	store    store.Store
	runner   *pipeline.Runner
	logger   *log.Logger
	sessions *sessionRegistry
}

// New creates a server backed by the given document store and pipeline
// runner. A nil runner disables caching for previews.
func New(st store.Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:    st,
		runner:   runner,
		logger:   logger,
		sessions: newSessionRegistry(),
	}
}

// Router builds the HTTP handler with all routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/documents", func(r chi.Router) {
		r.Post("/", s.handleCreateDocument)
		r.Get("/", s.handleListDocuments)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetDocument)
			r.Put("/", s.handleUpdateDocument)
			r.Delete("/", s.handleDeleteDocument)

			r.Post("/connections", s.handleAddConnection)
			r.Delete("/connections/{source}", s.handleRemoveConnection)

			r.Get("/drag", s.handleDragState)
			r.Post("/drag/start", s.handleDragStart)
			r.Post("/drag/end", s.handleDragEnd)
			r.Post("/drag/cancel", s.handleDragCancel)

			r.Get("/preview.svg", s.handlePreviewSVG)
			r.Get("/preview.png", s.handlePreviewPNG)
		})
	})

	return r
}

// Run serves the API on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	if err := errors.ValidateAddr(addr); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("serving API", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "shutdown server")
		}
		<-errCh
		return ctx.Err()
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.Wrap(errors.ErrCodeInternal, err, "serve API")
		}
		return nil
	}
}
