package bulk_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memedex/memedex/internal/bulk"
	"github.com/memedex/memedex/internal/dispatch"
	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
	testutil "github.com/memedex/memedex/internal/testing"
)

const clientKey = "client-a"

type harness struct {
	db          *generated.Client
	worker      *testutil.MockWorker
	coordinator *bulk.Coordinator
	dir         *generated.WatchedDirectory
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db := testutil.NewTestDB(t)
	mock := &testutil.MockWorker{}
	dispatcher := dispatch.New(db, mock, "test")

	return &harness{
		db:          db,
		worker:      mock,
		coordinator: bulk.New(db, dispatcher, bulk.NewMemoryStore()),
		dir:         testutil.NewDirectory(t, db),
	}
}

func (h *harness) items(t *testing.T, n int, st catalogitem.Status) []*generated.CatalogItem {
	t.Helper()

	items := make([]*generated.CatalogItem, n)
	for i := range items {
		items[i] = testutil.NewItem(t, h.db, h.dir, st)
	}
	return items
}

func (h *harness) setStatus(t *testing.T, item *generated.CatalogItem, st catalogitem.Status) {
	t.Helper()
	require.NoError(t, h.db.CatalogItem.UpdateOne(item).SetStatus(st).Exec(context.Background()))
}

func TestStart(t *testing.T) {
	t.Run("QueuesAllMatchingItems", func(t *testing.T) {
		h := newHarness(t)
		h.items(t, 3, catalogitem.StatusNotStarted)

		result, err := h.coordinator.Start(context.Background(), clientKey, bulk.Filter{}, "test")
		require.NoError(t, err)

		assert.Equal(t, 3, result.Total)
		assert.Equal(t, 3, result.Queued)
		assert.Equal(t, 0, result.Failed)
		assert.NotEmpty(t, result.OperationID)
		assert.Len(t, h.worker.Enqueued(), 3)
	})

	t.Run("DispatchFailureMarksItemFailed", func(t *testing.T) {
		h := newHarness(t)
		items := h.items(t, 3, catalogitem.StatusNotStarted)
		h.worker.EnqueueErrFor = map[int]error{
			items[1].ID: errors.New("worker rejected job"),
		}

		result, err := h.coordinator.Start(context.Background(), clientKey, bulk.Filter{}, "test")
		require.NoError(t, err)

		assert.Equal(t, 2, result.Queued)
		assert.Equal(t, 1, result.Failed)

		rejected, err := h.db.CatalogItem.Get(context.Background(), items[1].ID)
		require.NoError(t, err)
		assert.Equal(t, catalogitem.StatusFailed, rejected.Status)
	})

	t.Run("SecondStartForSameContextRejected", func(t *testing.T) {
		h := newHarness(t)
		h.items(t, 1, catalogitem.StatusNotStarted)

		_, err := h.coordinator.Start(context.Background(), clientKey, bulk.Filter{}, "test")
		require.NoError(t, err)

		_, err = h.coordinator.Start(context.Background(), clientKey, bulk.Filter{}, "test")
		assert.ErrorIs(t, err, bulk.ErrOperationActive)
	})

	t.Run("OtherContextsUnaffected", func(t *testing.T) {
		h := newHarness(t)
		h.items(t, 1, catalogitem.StatusNotStarted)

		_, err := h.coordinator.Start(context.Background(), clientKey, bulk.Filter{}, "test")
		require.NoError(t, err)

		_, err = h.coordinator.Start(context.Background(), "client-b", bulk.Filter{}, "test")
		assert.NoError(t, err)
	})

	t.Run("InvalidFilterRejectedBeforeDispatch", func(t *testing.T) {
		h := newHarness(t)
		h.items(t, 2, catalogitem.StatusNotStarted)

		missing := 99999
		_, err := h.coordinator.Start(context.Background(), clientKey, bulk.Filter{DirectoryID: &missing}, "test")
		assert.ErrorIs(t, err, bulk.ErrInvalidFilter)
		assert.Empty(t, h.worker.Enqueued(), "no dispatch on invalid filter")

		_, err = h.coordinator.Start(context.Background(), clientKey, bulk.Filter{TagID: &missing}, "test")
		assert.ErrorIs(t, err, bulk.ErrInvalidFilter)
	})

	t.Run("DirectoryFilter", func(t *testing.T) {
		h := newHarness(t)
		h.items(t, 2, catalogitem.StatusNotStarted)

		other := testutil.NewDirectory(t, h.db)
		testutil.NewItem(t, h.db, other, catalogitem.StatusNotStarted)

		result, err := h.coordinator.Start(context.Background(), clientKey, bulk.Filter{DirectoryID: &h.dir.ID}, "test")
		require.NoError(t, err)
		assert.Equal(t, 2, result.Total)
	})

	t.Run("TagFilter", func(t *testing.T) {
		h := newHarness(t)
		items := h.items(t, 3, catalogitem.StatusNotStarted)

		tagged, err := h.db.Tag.Create().SetName("reaction").Save(context.Background())
		require.NoError(t, err)
		require.NoError(t, h.db.CatalogItem.UpdateOne(items[0]).AddTags(tagged).Exec(context.Background()))

		result, err := h.coordinator.Start(context.Background(), clientKey, bulk.Filter{TagID: &tagged.ID}, "test")
		require.NoError(t, err)
		assert.Equal(t, 1, result.Total)
	})

	t.Run("NeedsDescriptionFilter", func(t *testing.T) {
		h := newHarness(t)

		// Included: not_started regardless of description, blank and nil descriptions.
		h.items(t, 1, catalogitem.StatusNotStarted)
		blank := testutil.NewItem(t, h.db, h.dir, catalogitem.StatusDone)
		require.NoError(t, h.db.CatalogItem.UpdateOne(blank).SetDescription("   ").Exec(context.Background()))
		testutil.NewItem(t, h.db, h.dir, catalogitem.StatusFailed)

		// Excluded: done with a real description.
		captioned := testutil.NewItem(t, h.db, h.dir, catalogitem.StatusDone)
		require.NoError(t, h.db.CatalogItem.UpdateOne(captioned).SetDescription("a dog").Exec(context.Background()))

		result, err := h.coordinator.Start(context.Background(), clientKey, bulk.Filter{NeedsDescription: true}, "test")
		require.NoError(t, err)
		assert.Equal(t, 3, result.Total)
	})

	t.Run("SnapshotExcludesItemsCreatedAfterStart", func(t *testing.T) {
		h := newHarness(t)
		h.items(t, 2, catalogitem.StatusNotStarted)

		_, err := h.coordinator.Start(context.Background(), clientKey, bulk.Filter{}, "test")
		require.NoError(t, err)

		// A later scan finds a new file; the running operation must not see it.
		testutil.NewItem(t, h.db, h.dir, catalogitem.StatusNotStarted)

		poll, err := h.coordinator.Poll(context.Background(), clientKey)
		require.NoError(t, err)
		assert.Equal(t, 2, poll.Total)
		assert.Equal(t, 0, poll.Counts["not_started"])
	})
}

func TestPoll(t *testing.T) {
	t.Run("NoOperation", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.coordinator.Poll(context.Background(), clientKey)
		assert.ErrorIs(t, err, bulk.ErrNoOperation)
	})

	t.Run("ReportsLiveProgress", func(t *testing.T) {
		h := newHarness(t)
		items := h.items(t, 3, catalogitem.StatusNotStarted)

		_, err := h.coordinator.Start(context.Background(), clientKey, bulk.Filter{}, "test")
		require.NoError(t, err)

		// Worker picks one up and finishes another.
		h.setStatus(t, items[0], catalogitem.StatusProcessing)
		h.setStatus(t, items[1], catalogitem.StatusDone)

		poll, err := h.coordinator.Poll(context.Background(), clientKey)
		require.NoError(t, err)

		assert.False(t, poll.IsComplete)
		assert.Equal(t, 1, poll.Counts["in_queue"])
		assert.Equal(t, 1, poll.Counts["processing"])
		assert.Equal(t, 1, poll.Counts["done"])
		assert.Equal(t, 3, poll.Total)
		assert.False(t, poll.StartedAt.IsZero())
	})

	t.Run("CompletionDeletesRecord", func(t *testing.T) {
		h := newHarness(t)
		items := h.items(t, 2, catalogitem.StatusNotStarted)

		_, err := h.coordinator.Start(context.Background(), clientKey, bulk.Filter{}, "test")
		require.NoError(t, err)

		h.setStatus(t, items[0], catalogitem.StatusDone)
		h.setStatus(t, items[1], catalogitem.StatusFailed)

		poll, err := h.coordinator.Poll(context.Background(), clientKey)
		require.NoError(t, err)
		assert.True(t, poll.IsComplete)
		assert.Equal(t, 1, poll.Counts["done"])
		assert.Equal(t, 1, poll.Counts["failed"])

		_, err = h.coordinator.Poll(context.Background(), clientKey)
		assert.ErrorIs(t, err, bulk.ErrNoOperation, "completed operation is gone on the next poll")
	})

	t.Run("FailedItemsStillCompleteTheOperation", func(t *testing.T) {
		h := newHarness(t)
		items := h.items(t, 1, catalogitem.StatusNotStarted)

		_, err := h.coordinator.Start(context.Background(), clientKey, bulk.Filter{}, "test")
		require.NoError(t, err)

		h.setStatus(t, items[0], catalogitem.StatusFailed)

		poll, err := h.coordinator.Poll(context.Background(), clientKey)
		require.NoError(t, err)
		assert.True(t, poll.IsComplete)
	})
}

func TestCancel(t *testing.T) {
	t.Run("NoOperation", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.coordinator.Cancel(context.Background(), clientKey)
		assert.ErrorIs(t, err, bulk.ErrNoOperation)
	})

	t.Run("CancelsOnlyQueuedItems", func(t *testing.T) {
		h := newHarness(t)
		items := h.items(t, 3, catalogitem.StatusNotStarted)

		_, err := h.coordinator.Start(context.Background(), clientKey, bulk.Filter{}, "test")
		require.NoError(t, err)

		// One item is already being processed; it cannot be withdrawn.
		h.setStatus(t, items[0], catalogitem.StatusProcessing)

		result, err := h.coordinator.Cancel(context.Background(), clientKey)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Total)
		assert.Equal(t, 2, result.Cancelled)
		assert.Len(t, h.worker.Dequeued(), 2)
	})

	t.Run("RecordDeletedEvenWhenCancellationsFail", func(t *testing.T) {
		h := newHarness(t)
		h.items(t, 2, catalogitem.StatusNotStarted)

		_, err := h.coordinator.Start(context.Background(), clientKey, bulk.Filter{}, "test")
		require.NoError(t, err)

		h.worker.DequeueErr = errors.New("connection refused")

		result, err := h.coordinator.Cancel(context.Background(), clientKey)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Cancelled)
		assert.Equal(t, 2, result.Total)

		_, err = h.coordinator.Poll(context.Background(), clientKey)
		assert.ErrorIs(t, err, bulk.ErrNoOperation, "record goes away regardless of outcome")
	})
}
