package scheduler_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memedex/memedex/internal/catalog"
	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
	"github.com/memedex/memedex/internal/scheduler"
	testutil "github.com/memedex/memedex/internal/testing"
)

type harness struct {
	db   *generated.Client
	root string
	svc  *catalog.Service
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db := testutil.NewTestDB(t)
	root := t.TempDir()
	return &harness{
		db:   db,
		root: root,
		svc:  catalog.New(db, root),
	}
}

// newAutoScanDirectory creates a directory on disk holding one image, with
// auto-scan enabled at the given frequency.
func (h *harness) newAutoScanDirectory(t *testing.T, frequencyMinutes int) *generated.WatchedDirectory {
	t.Helper()

	dir := testutil.NewDirectory(t, h.db)
	require.NoError(t, os.Mkdir(filepath.Join(h.root, dir.Name), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(h.root, dir.Name, "meme.jpg"), []byte("x"), 0644))

	dir, err := dir.Update().
		SetScanFrequencyMinutes(frequencyMinutes).
		Save(context.Background())
	require.NoError(t, err)
	return dir
}

func (h *harness) start(t *testing.T, opts ...scheduler.Option) *scheduler.Scheduler {
	t.Helper()

	opts = append([]scheduler.Option{scheduler.WithCheckInterval(10 * time.Millisecond)}, opts...)
	sched := scheduler.New(h.db, h.svc, opts...)
	require.NoError(t, sched.Start(context.Background()))
	t.Cleanup(sched.Stop)
	return sched
}

func (h *harness) lastScannedAt(t *testing.T, dirID int) *time.Time {
	t.Helper()

	dir, err := h.db.WatchedDirectory.Get(context.Background(), dirID)
	require.NoError(t, err)
	return dir.LastScannedAt
}

func TestSchedulerScansDueDirectories(t *testing.T) {
	t.Run("NeverScannedIsDue", func(t *testing.T) {
		h := newHarness(t)
		dir := h.newAutoScanDirectory(t, 60)

		h.start(t)

		assert.Eventually(t, func() bool {
			return h.lastScannedAt(t, dir.ID) != nil
		}, 2*time.Second, 10*time.Millisecond, "never-scanned directory should be picked up")

		count, err := h.db.CatalogItem.Query().
			Where(catalogitem.DirectoryID(dir.ID)).
			Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("FrequencyElapsedIsDue", func(t *testing.T) {
		h := newHarness(t)
		dir := h.newAutoScanDirectory(t, 1)

		stale := time.Now().Add(-2 * time.Minute)
		_, err := dir.Update().SetLastScannedAt(stale).Save(context.Background())
		require.NoError(t, err)

		h.start(t)

		assert.Eventually(t, func() bool {
			last := h.lastScannedAt(t, dir.ID)
			return last != nil && last.After(stale)
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("RecentlyScannedNotDue", func(t *testing.T) {
		h := newHarness(t)
		dir := h.newAutoScanDirectory(t, 60)

		recent := time.Now()
		_, err := dir.Update().SetLastScannedAt(recent).Save(context.Background())
		require.NoError(t, err)

		h.start(t)
		time.Sleep(100 * time.Millisecond)

		last := h.lastScannedAt(t, dir.ID)
		require.NotNil(t, last)
		assert.WithinDuration(t, recent, *last, time.Millisecond, "fresh directory must not be rescanned")
	})

	t.Run("ManualOnlyDirectorySkipped", func(t *testing.T) {
		h := newHarness(t)
		dir := testutil.NewDirectory(t, h.db) // no scan frequency set

		h.start(t)
		time.Sleep(100 * time.Millisecond)

		assert.Nil(t, h.lastScannedAt(t, dir.ID), "manual-only directory must never auto-scan")
	})
}

func TestSchedulerIsolatesDirectoryFailures(t *testing.T) {
	h := newHarness(t)

	// The escaping name makes this directory's scan fail every pass.
	_, err := h.db.WatchedDirectory.Create().
		SetName("../escape").
		SetScanFrequencyMinutes(1).
		Save(context.Background())
	require.NoError(t, err)

	good := h.newAutoScanDirectory(t, 60)

	h.start(t)

	assert.Eventually(t, func() bool {
		return h.lastScannedAt(t, good.ID) != nil
	}, 2*time.Second, 10*time.Millisecond, "one failing directory must not block the others")
}

func TestSchedulerStartTwice(t *testing.T) {
	h := newHarness(t)
	sched := h.start(t)

	assert.Error(t, sched.Start(context.Background()))
}

func TestSchedulerStopsAfterRepeatedPassFailures(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := catalog.New(db, t.TempDir())

	// Closing the client makes every due-directory lookup fail.
	require.NoError(t, db.Close())

	breaker := scheduler.NewBreaker(3, time.Hour)
	sched := scheduler.New(db, svc,
		scheduler.WithCheckInterval(5*time.Millisecond),
		scheduler.WithBreaker(breaker),
	)
	require.NoError(t, sched.Start(context.Background()))
	t.Cleanup(sched.Stop)

	select {
	case <-sched.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler should stop once the breaker trips")
	}

	assert.Equal(t, 0, breaker.Failures(), "counter resets when the breaker trips")
}

func TestBreaker(t *testing.T) {
	t.Run("TripsAtThreshold", func(t *testing.T) {
		b := scheduler.NewBreaker(3, time.Hour)

		assert.False(t, b.Record())
		assert.False(t, b.Record())
		assert.True(t, b.Record(), "third consecutive failure trips")
	})

	t.Run("ResetClearsCounter", func(t *testing.T) {
		b := scheduler.NewBreaker(3, time.Hour)

		b.Record()
		b.Record()
		b.Reset()

		assert.False(t, b.Record())
		assert.False(t, b.Record())
		assert.True(t, b.Record())
	})

	t.Run("FailuresExpireAfterTTL", func(t *testing.T) {
		now := time.Now()
		b := scheduler.NewBreaker(3, time.Hour, scheduler.WithClock(func() time.Time {
			return now
		}))

		b.Record()
		b.Record()

		// The earlier failures age out, so the count restarts.
		now = now.Add(2 * time.Hour)
		assert.False(t, b.Record())
		assert.Equal(t, 1, b.Failures())
	})

	t.Run("CounterResetsAfterTrip", func(t *testing.T) {
		b := scheduler.NewBreaker(2, time.Hour)

		b.Record()
		assert.True(t, b.Record())
		assert.Equal(t, 0, b.Failures())
		assert.False(t, b.Record(), "fresh count after trip")
	})
}
