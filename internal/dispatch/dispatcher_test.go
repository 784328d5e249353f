package dispatch_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memedex/memedex/internal/dispatch"
	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
	"github.com/memedex/memedex/internal/status"
	testutil "github.com/memedex/memedex/internal/testing"
)

type harness struct {
	db         *generated.Client
	worker     *testutil.MockWorker
	dispatcher *dispatch.Dispatcher
	dir        *generated.WatchedDirectory
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db := testutil.NewTestDB(t)
	mock := &testutil.MockWorker{}

	return &harness{
		db:         db,
		worker:     mock,
		dispatcher: dispatch.New(db, mock, "Florence-2-base"),
		dir:        testutil.NewDirectory(t, db),
	}
}

func (h *harness) item(t *testing.T, st catalogitem.Status) *generated.CatalogItem {
	t.Helper()
	return testutil.NewItem(t, h.db, h.dir, st)
}

func (h *harness) currentStatus(t *testing.T, itemID int) catalogitem.Status {
	t.Helper()

	item, err := h.db.CatalogItem.Get(context.Background(), itemID)
	require.NoError(t, err)
	return item.Status
}

func TestGenerate(t *testing.T) {
	t.Run("EnqueuesAndMovesToInQueue", func(t *testing.T) {
		h := newHarness(t)
		item := h.item(t, catalogitem.StatusNotStarted)

		require.NoError(t, h.dispatcher.Generate(context.Background(), item, "moondream2"))

		jobs := h.worker.Enqueued()
		require.Len(t, jobs, 1)
		assert.Equal(t, item.ID, jobs[0].ItemID)
		assert.Equal(t, h.dir.Name+"/"+item.Filename, jobs[0].ImagePath)
		assert.Equal(t, "moondream2", jobs[0].Model)

		assert.Equal(t, catalogitem.StatusInQueue, h.currentStatus(t, item.ID))
	})

	t.Run("EmptyModelUsesDefault", func(t *testing.T) {
		h := newHarness(t)
		item := h.item(t, catalogitem.StatusNotStarted)

		require.NoError(t, h.dispatcher.Generate(context.Background(), item, ""))

		jobs := h.worker.Enqueued()
		require.Len(t, jobs, 1)
		assert.Equal(t, "Florence-2-base", jobs[0].Model)
	})

	t.Run("RegenerateFromDoneAndFailed", func(t *testing.T) {
		h := newHarness(t)

		for _, st := range []catalogitem.Status{catalogitem.StatusDone, catalogitem.StatusFailed} {
			item := h.item(t, st)
			require.NoError(t, h.dispatcher.Generate(context.Background(), item, ""))
			assert.Equal(t, catalogitem.StatusInQueue, h.currentStatus(t, item.ID))
		}
	})

	t.Run("RejectsQueuedAndProcessing", func(t *testing.T) {
		h := newHarness(t)

		for _, st := range []catalogitem.Status{catalogitem.StatusInQueue, catalogitem.StatusProcessing, catalogitem.StatusRemoving} {
			item := h.item(t, st)
			err := h.dispatcher.Generate(context.Background(), item, "")
			assert.ErrorIs(t, err, dispatch.ErrAlreadyQueued, "status %s", st)
		}
		assert.Empty(t, h.worker.Enqueued())
	})

	t.Run("WorkerFailureLeavesStatusUntouched", func(t *testing.T) {
		h := newHarness(t)
		h.worker.EnqueueErr = errors.New("connection refused")
		item := h.item(t, catalogitem.StatusNotStarted)

		err := h.dispatcher.Generate(context.Background(), item, "")
		assert.ErrorIs(t, err, dispatch.ErrGenerationUnavailable)
		assert.Equal(t, catalogitem.StatusNotStarted, h.currentStatus(t, item.ID))
	})
}

func TestCancel(t *testing.T) {
	t.Run("DequeuesAndReturnsToNotStarted", func(t *testing.T) {
		h := newHarness(t)
		item := h.item(t, catalogitem.StatusInQueue)

		require.NoError(t, h.dispatcher.Cancel(context.Background(), item))

		assert.Equal(t, []int{item.ID}, h.worker.Dequeued())
		assert.Equal(t, catalogitem.StatusNotStarted, h.currentStatus(t, item.ID))
	})

	t.Run("RejectsUnlessQueued", func(t *testing.T) {
		h := newHarness(t)

		for _, st := range []catalogitem.Status{
			catalogitem.StatusNotStarted,
			catalogitem.StatusProcessing,
			catalogitem.StatusDone,
			catalogitem.StatusFailed,
			catalogitem.StatusRemoving,
		} {
			item := h.item(t, st)
			err := h.dispatcher.Cancel(context.Background(), item)
			assert.ErrorIs(t, err, dispatch.ErrNotCancellable, "status %s", st)
		}
		assert.Empty(t, h.worker.Dequeued())
	})

	t.Run("WorkerFailureLeavesRemoving", func(t *testing.T) {
		h := newHarness(t)
		h.worker.DequeueErr = errors.New("connection refused")
		item := h.item(t, catalogitem.StatusInQueue)

		err := h.dispatcher.Cancel(context.Background(), item)
		assert.ErrorIs(t, err, dispatch.ErrGenerationUnavailable)
		assert.Equal(t, catalogitem.StatusRemoving, h.currentStatus(t, item.ID))
	})
}

func TestApplyStatus(t *testing.T) {
	t.Run("AllowsTableTransitions", func(t *testing.T) {
		h := newHarness(t)
		item := h.item(t, catalogitem.StatusInQueue)

		updated, err := h.dispatcher.ApplyStatus(context.Background(), item, status.Processing)
		require.NoError(t, err)
		assert.Equal(t, catalogitem.StatusProcessing, updated.Status)

		updated, err = h.dispatcher.ApplyStatus(context.Background(), updated, status.Done)
		require.NoError(t, err)
		assert.Equal(t, catalogitem.StatusDone, updated.Status)
	})

	t.Run("RejectsIllegalTransitions", func(t *testing.T) {
		h := newHarness(t)

		item := h.item(t, catalogitem.StatusDone)
		_, err := h.dispatcher.ApplyStatus(context.Background(), item, status.Processing)
		assert.ErrorIs(t, err, dispatch.ErrInvalidTransition)

		item = h.item(t, catalogitem.StatusNotStarted)
		_, err = h.dispatcher.ApplyStatus(context.Background(), item, status.Done)
		assert.ErrorIs(t, err, dispatch.ErrInvalidTransition)
	})
}

func TestSetDescription(t *testing.T) {
	h := newHarness(t)
	item := h.item(t, catalogitem.StatusProcessing)

	updated, err := h.dispatcher.SetDescription(context.Background(), item, "a cat wearing sunglasses")
	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "a cat wearing sunglasses", *updated.Description)
}

func TestMarkFailed(t *testing.T) {
	h := newHarness(t)
	item := h.item(t, catalogitem.StatusNotStarted)

	require.NoError(t, h.dispatcher.MarkFailed(context.Background(), item))
	assert.Equal(t, catalogitem.StatusFailed, h.currentStatus(t, item.ID))
}
