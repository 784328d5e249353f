// Package scheduler runs the periodic scan loop over watched directories.
// Every check interval it looks up the directories whose scan frequency has
// elapsed and scans each one through the catalog service. Failures of a
// single directory are isolated; failures of a whole pass feed a circuit
// breaker that stops the loop after repeated consecutive trips.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/memedex/memedex/internal/catalog"
	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/ent/generated/watcheddirectory"
)

// Default configuration values.
const (
	defaultCheckInterval    = 5 * time.Minute
	defaultFailureThreshold = 3
	defaultFailureTTL       = time.Hour
)

// Scheduler drives periodic catalog scans.
type Scheduler struct {
	db            *generated.Client
	catalog       *catalog.Service
	checkInterval time.Duration
	breaker       *Breaker
	logger        zerolog.Logger

	started bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	done    chan struct{}
}

// Option is a functional option for configuring the scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithCheckInterval sets how often due directories are looked up.
func WithCheckInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		s.checkInterval = d
	}
}

// WithBreaker replaces the default circuit breaker.
func WithBreaker(b *Breaker) Option {
	return func(s *Scheduler) {
		s.breaker = b
	}
}

// New creates a new scheduler.
func New(db *generated.Client, catalogService *catalog.Service, opts ...Option) *Scheduler {
	s := &Scheduler{
		db:            db,
		catalog:       catalogService,
		checkInterval: defaultCheckInterval,
		logger:        zerolog.Nop(),
		done:          make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.breaker == nil {
		s.breaker = NewBreaker(defaultFailureThreshold, defaultFailureTTL)
	}

	return s
}

// Start begins the scan loop. The loop does not self-start; process boot
// must call Start exactly once. Calling Start twice is an error.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.started {
		return errors.New("scheduler already started")
	}
	s.started = true

	s.ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Go(s.loop)

	s.logger.Info().
		Dur("check_interval", s.checkInterval).
		Msg("scan scheduler started")
	return nil
}

// Stop stops the scheduler and waits for the loop to exit.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// Done is closed when the loop exits, whether from Stop or from the
// circuit breaker tripping.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

func (s *Scheduler) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	if !s.runPass() {
		return
	}

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Debug().Msg("scan scheduler stopping")
			return
		case <-ticker.C:
			if !s.runPass() {
				return
			}
		}
	}
}

// runPass executes one pass and reports whether the loop should re-arm.
func (s *Scheduler) runPass() bool {
	err := s.pass(s.ctx)
	if err == nil {
		s.breaker.Reset()
		return true
	}

	if s.ctx.Err() != nil {
		return false
	}

	s.logger.Error().Err(err).Msg("scan pass failed")

	if s.breaker.Record() {
		s.logger.Error().Msg("scan scheduler stopped after repeated pass failures")
		return false
	}

	return true
}

// pass scans every due directory. An error scanning one directory is logged
// and does not abort the pass; only a failure of the pass itself (the due
// lookup, or a panic) is returned and counted by the breaker.
func (s *Scheduler) pass(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scan pass panicked: %v", r)
		}
	}()

	due, err := s.dueDirectories(ctx)
	if err != nil {
		return fmt.Errorf("failed to query due directories: %w", err)
	}

	s.logger.Debug().Int("due", len(due)).Msg("running scan pass")

	for _, dir := range due {
		if _, err := s.catalog.Scan(ctx, dir); err != nil {
			if errors.Is(err, catalog.ErrScanInProgress) {
				s.logger.Debug().
					Str("directory", dir.Name).
					Msg("scan already in progress, skipping")
				continue
			}
			s.logger.Error().
				Err(err).
				Str("directory", dir.Name).
				Msg("directory scan failed")
		}
	}

	return nil
}

// dueDirectories returns directories with auto-scan enabled that have never
// been scanned or whose scan frequency has elapsed. Frequencies finer than
// the check interval get up to one interval of slack.
func (s *Scheduler) dueDirectories(ctx context.Context) ([]*generated.WatchedDirectory, error) {
	dirs, err := s.db.WatchedDirectory.Query().
		Where(watcheddirectory.ScanFrequencyMinutesNotNil()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	due := make([]*generated.WatchedDirectory, 0, len(dirs))
	for _, dir := range dirs {
		if dir.LastScannedAt == nil {
			due = append(due, dir)
			continue
		}

		frequency := time.Duration(*dir.ScanFrequencyMinutes) * time.Minute
		if !now.Before(dir.LastScannedAt.Add(frequency)) {
			due = append(due, dir)
		}
	}

	return due, nil
}
