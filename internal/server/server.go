// Package server provides the main application server. It wires the
// database, event bus, worker client, catalog, dispatcher, bulk
// coordinator, scan scheduler, and HTTP API together from configuration.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/memedex/memedex/internal/api"
	"github.com/memedex/memedex/internal/bulk"
	"github.com/memedex/memedex/internal/catalog"
	"github.com/memedex/memedex/internal/config"
	"github.com/memedex/memedex/internal/dispatch"
	"github.com/memedex/memedex/internal/ent"
	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/events"
	"github.com/memedex/memedex/internal/scheduler"
	"github.com/memedex/memedex/internal/worker"
)

// Options holds additional server options not in config.
type Options struct {
	Logger zerolog.Logger
}

// Server is the main application server.
type Server struct {
	cfg       config.Config
	db        *generated.Client
	bus       *events.Bus
	apiServer *api.Server
	scheduler *scheduler.Scheduler
	logger    zerolog.Logger
}

// New creates a new server with the given configuration.
func New(cfg config.Config, opts Options) (*Server, error) {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = zerolog.Nop()
	}

	db, err := ent.OpenSQLite(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ent.Migrate(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}

	bus := events.New(
		events.WithLogger(logger.With().Str("component", "events").Logger()),
	)

	workerClient := worker.New(
		cfg.Worker.URL,
		cfg.Worker.HTTPTimeout,
		worker.WithLogger(logger.With().Str("component", "worker").Logger()),
	)

	catalogService := catalog.New(
		db,
		cfg.Library.Root,
		catalog.WithLogger(logger.With().Str("component", "catalog").Logger()),
		catalog.WithEventBus(bus),
	)

	dispatcher := dispatch.New(
		db,
		workerClient,
		cfg.Worker.DefaultModel,
		dispatch.WithLogger(logger.With().Str("component", "dispatch").Logger()),
		dispatch.WithEventBus(bus),
	)

	coordinator := bulk.New(
		db,
		dispatcher,
		bulk.NewMemoryStore(),
		bulk.WithLogger(logger.With().Str("component", "bulk").Logger()),
		bulk.WithEventBus(bus),
	)

	sched := scheduler.New(
		db,
		catalogService,
		scheduler.WithLogger(logger.With().Str("component", "scheduler").Logger()),
		scheduler.WithCheckInterval(cfg.Scanner.CheckInterval),
		scheduler.WithBreaker(scheduler.NewBreaker(cfg.Scanner.FailureThreshold, cfg.Scanner.FailureTTL)),
	)

	apiServer := api.New(
		db,
		catalogService,
		dispatcher,
		coordinator,
		api.WithLogger(logger.With().Str("component", "api").Logger()),
	)

	return &Server{
		cfg:       cfg,
		db:        db,
		bus:       bus,
		apiServer: apiServer,
		scheduler: sched,
		logger:    logger,
	}, nil
}

// Run starts the scan scheduler and the HTTP server and blocks until the
// context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info().
		Str("listen", s.cfg.Server.Listen).
		Str("library_root", s.cfg.Library.Root).
		Str("worker_url", s.cfg.Worker.URL).
		Msg("starting memedex")

	s.bus.Publish(events.Event{Type: events.SystemStarted})

	// The scheduler does not self-start; this is its single activation.
	if err := s.scheduler.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.apiServer.Start(s.cfg.Server.Listen); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("received shutdown signal")
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-s.scheduler.Done():
		// Breaker tripped. The API stays up so manual scans keep working.
		s.logger.Warn().Msg("scan scheduler stopped, continuing without automatic scans")
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("received shutdown signal")
		case err := <-errCh:
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down...")

	if err := s.apiServer.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("server shutdown error")
	}

	s.scheduler.Stop()
	s.bus.Close()

	if err := s.db.Close(); err != nil {
		s.logger.Error().Err(err).Msg("database close error")
	}

	s.logger.Info().Msg("shutdown complete")
	return nil
}

// Bus returns the server's event bus.
func (s *Server) Bus() *events.Bus {
	return s.bus
}

// ServeHTTP implements http.Handler for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.apiServer.ServeHTTP(w, r)
}
