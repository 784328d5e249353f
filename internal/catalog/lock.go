package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/ent/generated/watcheddirectory"
	"github.com/memedex/memedex/internal/events"
)

// ErrScanInProgress is returned when a scan is requested for a directory
// that is already being scanned.
var ErrScanInProgress = errors.New("scan already in progress")

// TryAcquire claims the scan lock for a directory. The update is conditional
// on currently_scanning being false, so concurrent callers race on a single
// row update and exactly one wins.
func (s *Service) TryAcquire(ctx context.Context, dirID int) (bool, error) {
	n, err := s.db.WatchedDirectory.Update().
		Where(
			watcheddirectory.ID(dirID),
			watcheddirectory.CurrentlyScanning(false),
		).
		SetCurrentlyScanning(true).
		SetScanStatus(watcheddirectory.ScanStatusScanning).
		ClearLastScanError().
		Save(ctx)
	if err != nil {
		return false, err
	}

	return n == 1, nil
}

// Complete releases the scan lock and records a successful scan.
func (s *Service) Complete(ctx context.Context, dirID int, duration time.Duration) error {
	return s.db.WatchedDirectory.UpdateOneID(dirID).
		SetCurrentlyScanning(false).
		SetScanStatus(watcheddirectory.ScanStatusIdle).
		SetLastScannedAt(time.Now()).
		SetLastScanDurationMs(duration.Milliseconds()).
		ClearLastScanError().
		Exec(ctx)
}

// Fail releases the scan lock and records the scan error. The last scanned
// time is left untouched so the directory stays due for the next pass.
func (s *Service) Fail(ctx context.Context, dirID int, scanErr error) error {
	return s.db.WatchedDirectory.UpdateOneID(dirID).
		SetCurrentlyScanning(false).
		SetScanStatus(watcheddirectory.ScanStatusFailed).
		SetLastScanError(scanErr.Error()).
		Exec(ctx)
}

// Scan runs a full locked scan of a directory: acquire the lock, sync the
// catalog, then record the outcome and release the lock. It returns
// ErrScanInProgress when another scan holds the lock.
func (s *Service) Scan(ctx context.Context, dir *generated.WatchedDirectory) (Result, error) {
	acquired, err := s.TryAcquire(ctx, dir.ID)
	if err != nil {
		return Result{}, err
	}
	if !acquired {
		return Result{}, ErrScanInProgress
	}

	started := time.Now()
	s.publish(events.Event{
		Type:    events.ScanStarted,
		Subject: dir,
		Data:    map[string]any{"directory": dir.Name},
	})

	result, err := s.Sync(ctx, dir)
	if err != nil {
		if failErr := s.Fail(ctx, dir.ID, err); failErr != nil {
			s.logger.Error().
				Err(failErr).
				Str("directory", dir.Name).
				Msg("failed to record scan failure")
		}
		s.publish(events.Event{
			Type:    events.ScanFailed,
			Subject: dir,
			Data: map[string]any{
				"directory": dir.Name,
				"error":     err.Error(),
			},
		})
		return Result{}, err
	}

	if err := s.Complete(ctx, dir.ID, time.Since(started)); err != nil {
		return result, err
	}

	s.logger.Info().
		Str("directory", dir.Name).
		Int("added", result.Added).
		Int("removed", result.Removed).
		Msg("scan completed")
	s.publish(events.Event{
		Type:    events.ScanCompleted,
		Subject: dir,
		Data: map[string]any{
			"directory": dir.Name,
			"added":     result.Added,
			"removed":   result.Removed,
		},
	})

	return result, nil
}
