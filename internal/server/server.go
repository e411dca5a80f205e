package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"ng-jenkins-demo/internal/config"
	"ng-jenkins-demo/internal/core"
	tlog "ng-jenkins-demo/internal/log"
	"ng-jenkins-demo/internal/pages"
)

// Server serves the demo application. Everything it shows is fixed
// when it is constructed.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	pages    *pages.Pages
	shell    pages.ShellParams
	build    core.BuildInfo
	pipeline *core.Pipeline
}

// Options lets callers inject the identifier sources; nil falls back to
// the wall clock.
type Options struct {
	ShellIDs core.IDProvider
	HomeIDs  core.IDProvider
	Now      func() time.Time
}

func New(ctx context.Context, cfg *config.Config, opts Options) (*Server, error) {
	logger := tlog.SubLogger(tlog.FromContext(ctx), "server")

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	clock := core.ClockIDs{Now: now}
	if opts.ShellIDs == nil {
		opts.ShellIDs = clock
	}
	if opts.HomeIDs == nil {
		opts.HomeIDs = clock
	}

	p, err := pages.NewPages(logger, cfg.Server.Dev)
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		pages:    p,
		shell:    pages.NewShell(opts.ShellIDs, now()),
		build:    core.NewBuildInfo(opts.HomeIDs),
		pipeline: core.DefaultPipeline(),
	}
	return s, nil
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "address", srv.Addr, "build", s.shell.BuildID)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
