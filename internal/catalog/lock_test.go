package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memedex/memedex/internal/catalog"
	"github.com/memedex/memedex/internal/ent/generated/watcheddirectory"
)

func TestTryAcquire(t *testing.T) {
	h := newHarness(t)
	dir := h.newDirectoryOnDisk(t)
	ctx := context.Background()

	acquired, err := h.service.TryAcquire(ctx, dir.ID)
	require.NoError(t, err)
	assert.True(t, acquired, "first acquire should win")

	acquired, err = h.service.TryAcquire(ctx, dir.ID)
	require.NoError(t, err)
	assert.False(t, acquired, "second acquire should lose while lock is held")

	require.NoError(t, h.service.Complete(ctx, dir.ID, time.Second))

	acquired, err = h.service.TryAcquire(ctx, dir.ID)
	require.NoError(t, err)
	assert.True(t, acquired, "acquire should win again after release")
}

func TestScan(t *testing.T) {
	t.Run("RecordsSuccess", func(t *testing.T) {
		h := newHarness(t)
		dir := h.newDirectoryOnDisk(t)
		h.writeFile(t, dir, "cat.jpg")

		result, err := h.service.Scan(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, catalog.Result{Added: 1}, result)

		updated, err := h.db.WatchedDirectory.Get(context.Background(), dir.ID)
		require.NoError(t, err)
		assert.False(t, updated.CurrentlyScanning)
		assert.Equal(t, watcheddirectory.ScanStatusIdle, updated.ScanStatus)
		require.NotNil(t, updated.LastScannedAt)
		assert.WithinDuration(t, time.Now(), *updated.LastScannedAt, 5*time.Second)
		assert.Nil(t, updated.LastScanError)
	})

	t.Run("RejectsWhileLocked", func(t *testing.T) {
		h := newHarness(t)
		dir := h.newDirectoryOnDisk(t)

		acquired, err := h.service.TryAcquire(context.Background(), dir.ID)
		require.NoError(t, err)
		require.True(t, acquired)

		_, err = h.service.Scan(context.Background(), dir)
		assert.ErrorIs(t, err, catalog.ErrScanInProgress)
	})

	t.Run("RecordsFailureAndReleasesLock", func(t *testing.T) {
		h := newHarness(t)

		// A name that escapes the library root makes the sync fail.
		dir, err := h.db.WatchedDirectory.Create().
			SetName("../escape").
			Save(context.Background())
		require.NoError(t, err)

		_, err = h.service.Scan(context.Background(), dir)
		require.Error(t, err)

		updated, err := h.db.WatchedDirectory.Get(context.Background(), dir.ID)
		require.NoError(t, err)
		assert.False(t, updated.CurrentlyScanning, "lock must be released after a failed scan")
		assert.Equal(t, watcheddirectory.ScanStatusFailed, updated.ScanStatus)
		require.NotNil(t, updated.LastScanError)
		assert.Contains(t, *updated.LastScanError, "escapes")
		assert.Nil(t, updated.LastScannedAt, "failed scans do not count as scanned")
	})
}
