package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memedex/memedex/apitypes"
	"github.com/memedex/memedex/internal/api"
	"github.com/memedex/memedex/internal/bulk"
	"github.com/memedex/memedex/internal/catalog"
	"github.com/memedex/memedex/internal/dispatch"
	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
	testutil "github.com/memedex/memedex/internal/testing"
)

type harness struct {
	db     *generated.Client
	root   string
	worker *testutil.MockWorker
	server *api.Server
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db := testutil.NewTestDB(t)
	root := t.TempDir()
	mock := &testutil.MockWorker{}

	catalogService := catalog.New(db, root)
	dispatcher := dispatch.New(db, mock, "test")
	coordinator := bulk.New(db, dispatcher, bulk.NewMemoryStore())

	return &harness{
		db:     db,
		root:   root,
		worker: mock,
		server: api.New(db, catalogService, dispatcher, coordinator),
	}
}

// request performs an HTTP request against the server and returns the
// recorder. A non-nil body is JSON-encoded.
func (h *harness) request(t *testing.T, method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(encoded))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range header {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	h.server.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	h := newHarness(t)

	rec := h.request(t, http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[apitypes.HealthResponse](t, rec).Status)
}

func TestDirectoryLifecycle(t *testing.T) {
	h := newHarness(t)

	freq := 60
	rec := h.request(t, http.MethodPost, "/api/directories", apitypes.CreateDirectoryRequest{
		Name:                 "memes_a",
		ScanFrequencyMinutes: &freq,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[apitypes.Directory](t, rec)
	assert.Equal(t, "memes_a", created.Name)
	require.NotNil(t, created.ScanFrequencyMinutes)
	assert.Equal(t, 60, *created.ScanFrequencyMinutes)

	// Duplicate name
	rec = h.request(t, http.MethodPost, "/api/directories", apitypes.CreateDirectoryRequest{Name: "memes_a"}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Path-escaping names are rejected
	rec = h.request(t, http.MethodPost, "/api/directories", apitypes.CreateDirectoryRequest{Name: "../etc"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Disable auto-scan
	rec = h.request(t, http.MethodPut, fmt.Sprintf("/api/directories/%d", created.ID),
		apitypes.UpdateDirectoryRequest{}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode[apitypes.Directory](t, rec).ScanFrequencyMinutes)

	// List
	rec = h.request(t, http.MethodGet, "/api/directories", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]apitypes.Directory](t, rec), 1)

	// Delete
	rec = h.request(t, http.MethodDelete, fmt.Sprintf("/api/directories/%d", created.ID), nil, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = h.request(t, http.MethodGet, fmt.Sprintf("/api/directories/%d", created.ID), nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestManualScan(t *testing.T) {
	h := newHarness(t)

	rec := h.request(t, http.MethodPost, "/api/directories", apitypes.CreateDirectoryRequest{Name: "memes_a"}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	dir := decode[apitypes.Directory](t, rec)

	require.NoError(t, os.Mkdir(filepath.Join(h.root, "memes_a"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(h.root, "memes_a", "cat.jpg"), []byte("x"), 0644))

	rec = h.request(t, http.MethodPost, fmt.Sprintf("/api/directories/%d/scan", dir.ID), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	scan := decode[apitypes.ScanResponse](t, rec)
	assert.Equal(t, 1, scan.Added)
	assert.Equal(t, 0, scan.Removed)

	// A held lock turns into a conflict
	_, err := h.db.WatchedDirectory.UpdateOneID(dir.ID).
		SetCurrentlyScanning(true).
		Save(context.Background())
	require.NoError(t, err)

	rec = h.request(t, http.MethodPost, fmt.Sprintf("/api/directories/%d/scan", dir.ID), nil, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGenerateAndCancel(t *testing.T) {
	h := newHarness(t)
	dir := testutil.NewDirectory(t, h.db)
	item := testutil.NewItem(t, h.db, dir, catalogitem.StatusNotStarted)

	rec := h.request(t, http.MethodPost, fmt.Sprintf("/api/items/%d/generate", item.ID),
		apitypes.GenerateRequest{Model: "moondream2"}, nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "in_queue", decode[apitypes.Item](t, rec).Status)

	// Generating again conflicts
	rec = h.request(t, http.MethodPost, fmt.Sprintf("/api/items/%d/generate", item.ID), nil, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Unknown model
	rec = h.request(t, http.MethodPost, fmt.Sprintf("/api/items/%d/generate", item.ID),
		apitypes.GenerateRequest{Model: "gpt-vision"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Cancel returns the item to not_started
	rec = h.request(t, http.MethodPost, fmt.Sprintf("/api/items/%d/cancel", item.ID), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "not_started", decode[apitypes.Item](t, rec).Status)

	// Cancelling an idle item conflicts
	rec = h.request(t, http.MethodPost, fmt.Sprintf("/api/items/%d/cancel", item.ID), nil, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGenerateWorkerDown(t *testing.T) {
	h := newHarness(t)
	h.worker.EnqueueErr = fmt.Errorf("connection refused")

	dir := testutil.NewDirectory(t, h.db)
	item := testutil.NewItem(t, h.db, dir, catalogitem.StatusNotStarted)

	rec := h.request(t, http.MethodPost, fmt.Sprintf("/api/items/%d/generate", item.ID), nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStatusCallback(t *testing.T) {
	h := newHarness(t)
	dir := testutil.NewDirectory(t, h.db)

	newCallback := func(itemID, code int) apitypes.StatusCallback {
		var cb apitypes.StatusCallback
		cb.Data.ItemID = itemID
		cb.Data.Status = code
		return cb
	}

	t.Run("ValidTransition", func(t *testing.T) {
		item := testutil.NewItem(t, h.db, dir, catalogitem.StatusInQueue)

		rec := h.request(t, http.MethodPost, "/api/callbacks/status", newCallback(item.ID, 2), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "processing", decode[apitypes.Item](t, rec).Status)
	})

	t.Run("IllegalTransition", func(t *testing.T) {
		item := testutil.NewItem(t, h.db, dir, catalogitem.StatusDone)

		rec := h.request(t, http.MethodPost, "/api/callbacks/status", newCallback(item.ID, 2), nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("UnknownCode", func(t *testing.T) {
		item := testutil.NewItem(t, h.db, dir, catalogitem.StatusInQueue)

		rec := h.request(t, http.MethodPost, "/api/callbacks/status", newCallback(item.ID, 42), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UnknownItem", func(t *testing.T) {
		rec := h.request(t, http.MethodPost, "/api/callbacks/status", newCallback(99999, 2), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDescriptionCallback(t *testing.T) {
	h := newHarness(t)
	dir := testutil.NewDirectory(t, h.db)
	item := testutil.NewItem(t, h.db, dir, catalogitem.StatusProcessing)

	var cb apitypes.DescriptionCallback
	cb.Data.ItemID = item.ID
	cb.Data.Description = "a cat wearing sunglasses"

	rec := h.request(t, http.MethodPost, "/api/callbacks/description", cb, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decode[apitypes.Item](t, rec)
	assert.Equal(t, "done", updated.Status)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "a cat wearing sunglasses", *updated.Description)
}

func TestBulkFlow(t *testing.T) {
	h := newHarness(t)
	dir := testutil.NewDirectory(t, h.db)
	items := []*generated.CatalogItem{
		testutil.NewItem(t, h.db, dir, catalogitem.StatusNotStarted),
		testutil.NewItem(t, h.db, dir, catalogitem.StatusNotStarted),
	}
	clientA := map[string]string{"X-Client-ID": "client-a"}

	// No operation yet
	rec := h.request(t, http.MethodGet, "/api/bulk/status", nil, clientA)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[apitypes.BulkStatusResponse](t, rec).Active)

	// Start
	rec = h.request(t, http.MethodPost, "/api/bulk/generate", apitypes.BulkGenerateRequest{Model: "test"}, clientA)
	require.Equal(t, http.StatusAccepted, rec.Code)
	started := decode[apitypes.BulkGenerateResponse](t, rec)
	assert.Equal(t, 2, started.Queued)
	assert.Equal(t, 0, started.Failed)

	// Second start for the same client conflicts; another client is fine
	rec = h.request(t, http.MethodPost, "/api/bulk/generate", apitypes.BulkGenerateRequest{}, clientA)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Progress
	rec = h.request(t, http.MethodGet, "/api/bulk/status", nil, clientA)
	require.Equal(t, http.StatusOK, rec.Code)
	progress := decode[apitypes.BulkStatusResponse](t, rec)
	assert.True(t, progress.Active)
	assert.False(t, progress.IsComplete)
	assert.Equal(t, 2, progress.StatusCounts["in_queue"])

	// Worker finishes both; the next poll completes and clears the record
	for _, item := range items {
		require.NoError(t, h.db.CatalogItem.UpdateOneID(item.ID).
			SetStatus(catalogitem.StatusDone).
			Exec(context.Background()))
	}

	rec = h.request(t, http.MethodGet, "/api/bulk/status", nil, clientA)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[apitypes.BulkStatusResponse](t, rec).IsComplete)

	rec = h.request(t, http.MethodGet, "/api/bulk/status", nil, clientA)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[apitypes.BulkStatusResponse](t, rec).Active)

	// Nothing left to cancel
	rec = h.request(t, http.MethodPost, "/api/bulk/cancel", nil, clientA)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBulkCancel(t *testing.T) {
	h := newHarness(t)
	dir := testutil.NewDirectory(t, h.db)
	testutil.NewItem(t, h.db, dir, catalogitem.StatusNotStarted)
	clientA := map[string]string{"X-Client-ID": "client-a"}

	rec := h.request(t, http.MethodPost, "/api/bulk/generate", apitypes.BulkGenerateRequest{}, clientA)
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = h.request(t, http.MethodPost, "/api/bulk/cancel", nil, clientA)
	require.Equal(t, http.StatusOK, rec.Code)
	cancelled := decode[apitypes.BulkCancelResponse](t, rec)
	assert.Equal(t, 1, cancelled.Cancelled)

	rec = h.request(t, http.MethodGet, "/api/bulk/status", nil, clientA)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[apitypes.BulkStatusResponse](t, rec).Active)
}

func TestTags(t *testing.T) {
	h := newHarness(t)
	dir := testutil.NewDirectory(t, h.db)
	item := testutil.NewItem(t, h.db, dir, catalogitem.StatusNotStarted)

	rec := h.request(t, http.MethodPost, "/api/tags", apitypes.CreateTagRequest{Name: "reaction"}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[apitypes.Tag](t, rec)

	rec = h.request(t, http.MethodPost, "/api/tags", apitypes.CreateTagRequest{Name: "reaction"}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = h.request(t, http.MethodPost, fmt.Sprintf("/api/items/%d/tags/%d", item.ID, created.ID), nil, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = h.request(t, http.MethodGet, fmt.Sprintf("/api/items/%d", item.ID), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tagged := decode[apitypes.Item](t, rec)
	require.Len(t, tagged.Tags, 1)
	assert.Equal(t, "reaction", tagged.Tags[0].Name)

	rec = h.request(t, http.MethodGet, fmt.Sprintf("/api/items?tag_id=%d", created.ID), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]apitypes.Item](t, rec), 1)

	rec = h.request(t, http.MethodDelete, fmt.Sprintf("/api/items/%d/tags/%d", item.ID, created.ID), nil, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = h.request(t, http.MethodDelete, fmt.Sprintf("/api/tags/%d", created.ID), nil, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListItemsFilters(t *testing.T) {
	h := newHarness(t)
	dirA := testutil.NewDirectory(t, h.db)
	dirB := testutil.NewDirectory(t, h.db)
	testutil.NewItem(t, h.db, dirA, catalogitem.StatusNotStarted)
	testutil.NewItem(t, h.db, dirA, catalogitem.StatusDone)
	testutil.NewItem(t, h.db, dirB, catalogitem.StatusDone)

	rec := h.request(t, http.MethodGet, fmt.Sprintf("/api/items?directory_id=%d", dirA.ID), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]apitypes.Item](t, rec), 2)

	rec = h.request(t, http.MethodGet, "/api/items?status=done", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]apitypes.Item](t, rec), 2)

	rec = h.request(t, http.MethodGet, "/api/items?status=bogus", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStats(t *testing.T) {
	h := newHarness(t)
	dir := testutil.NewDirectory(t, h.db)
	testutil.NewItem(t, h.db, dir, catalogitem.StatusNotStarted)
	testutil.NewItem(t, h.db, dir, catalogitem.StatusDone)

	rec := h.request(t, http.MethodGet, "/api/stats", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decode[apitypes.Stats](t, rec)
	assert.Equal(t, 1, stats.Directories)
	assert.Equal(t, 2, stats.Items)
	assert.Equal(t, 1, stats.ByStatus["not_started"])
	assert.Equal(t, 1, stats.ByStatus["done"])
}
