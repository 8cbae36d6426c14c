// Package server exposes the catalog over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/abhisek/quizpack/internal/catalog"
	"github.com/abhisek/quizpack/internal/grading"
	"github.com/abhisek/quizpack/internal/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configures a Server. Catalog is required; everything else is
// optional.
type Options struct {
	Catalog   *catalog.Catalog
	Evaluator grading.Evaluator

	// Attempts, when set, receives every answer submission.
	Attempts store.AttemptRepo

	Logger *zap.Logger
}

// Server serves a read-only catalog. It is safe for concurrent use.
type Server struct {
	catalog   *catalog.Catalog
	evaluator grading.Evaluator
	attempts  store.AttemptRepo
	logger    *zap.Logger
	handler   http.Handler
}

// New builds a Server and its routes.
func New(opts Options) (*Server, error) {
	if opts.Catalog == nil {
		return nil, errors.New("server: catalog is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		catalog:   opts.Catalog,
		evaluator: opts.Evaluator,
		attempts:  opts.Attempts,
		logger:    logger,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)
	s.handler = s.withRequestID(s.withAccessLog(s.withRecover(mux)))
	return s, nil
}

// Handler returns the root HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln, shutdownTimeout)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully, waiting at most shutdownTimeout (0 waits indefinitely) for
// in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", zap.String("addr", ln.Addr().String()), zap.Int("packets", s.catalog.Len()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down")

		sctx := context.Background()
		if shutdownTimeout > 0 {
			var cancel context.CancelFunc
			sctx, cancel = context.WithTimeout(sctx, shutdownTimeout)
			defer cancel()
		}
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
