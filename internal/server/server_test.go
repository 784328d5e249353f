package server_test

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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memedex/memedex/apitypes"
	"github.com/memedex/memedex/internal/config"
	"github.com/memedex/memedex/internal/events"
	"github.com/memedex/memedex/internal/server"
	testutil "github.com/memedex/memedex/internal/testing"
)

type harness struct {
	cfg    config.Config
	server *server.Server
	worker *testutil.FakeWorker
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	fakeWorker := testutil.NewFakeWorker(t)
	cfg := testutil.NewTestConfig(t, map[string]any{
		"worker": map[string]any{
			"url":          fakeWorker.URL(),
			"defaultModel": "test",
		},
	})

	srv, err := server.New(cfg, server.Options{})
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})

	return &harness{
		cfg:    cfg,
		server: srv,
		worker: fakeWorker,
	}
}

func (h *harness) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	reader := strings.NewReader("")
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(encoded))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
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

func TestServerBoot(t *testing.T) {
	h := newHarness(t)

	rec := h.request(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[apitypes.HealthResponse](t, rec).Status)
}

func TestCaptionFlow(t *testing.T) {
	h := newHarness(t)

	// Register a directory and put an image in it.
	rec := h.request(t, http.MethodPost, "/api/directories", apitypes.CreateDirectoryRequest{Name: "memes"})
	require.Equal(t, http.StatusCreated, rec.Code)
	dir := decode[apitypes.Directory](t, rec)

	require.NoError(t, os.Mkdir(filepath.Join(h.cfg.Library.Root, "memes"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(h.cfg.Library.Root, "memes", "cat.jpg"), []byte("x"), 0644))

	rec = h.request(t, http.MethodPost, fmt.Sprintf("/api/directories/%d/scan", dir.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, decode[apitypes.ScanResponse](t, rec).Added)

	rec = h.request(t, http.MethodGet, "/api/items", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decode[[]apitypes.Item](t, rec)
	require.Len(t, items, 1)
	item := items[0]
	assert.Equal(t, "cat.jpg", item.Filename)
	assert.Equal(t, "not_started", item.Status)

	// Request a caption; the job lands at the worker.
	rec = h.request(t, http.MethodPost, fmt.Sprintf("/api/items/%d/generate", item.ID), nil)
	require.Equal(t, http.StatusAccepted, rec.Code)

	jobs := h.worker.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, item.ID, jobs[0].ItemID)
	assert.Equal(t, "memes/cat.jpg", jobs[0].ImagePath)
	assert.Equal(t, "test", jobs[0].Model)

	// The worker reports progress, then delivers the caption.
	var statusCb apitypes.StatusCallback
	statusCb.Data.ItemID = item.ID
	statusCb.Data.Status = 2 // processing
	rec = h.request(t, http.MethodPost, "/api/callbacks/status", statusCb)
	require.Equal(t, http.StatusOK, rec.Code)

	var descCb apitypes.DescriptionCallback
	descCb.Data.ItemID = item.ID
	descCb.Data.Description = "a cat"
	rec = h.request(t, http.MethodPost, "/api/callbacks/description", descCb)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.request(t, http.MethodGet, fmt.Sprintf("/api/items/%d", item.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	final := decode[apitypes.Item](t, rec)
	assert.Equal(t, "done", final.Status)
	require.NotNil(t, final.Description)
	assert.Equal(t, "a cat", *final.Description)
}

func TestScanPublishesEvents(t *testing.T) {
	h := newHarness(t)

	sub := h.server.Bus().Subscribe(events.ItemCreated, events.ScanCompleted)

	rec := h.request(t, http.MethodPost, "/api/directories", apitypes.CreateDirectoryRequest{Name: "memes"})
	require.Equal(t, http.StatusCreated, rec.Code)
	dir := decode[apitypes.Directory](t, rec)

	require.NoError(t, os.Mkdir(filepath.Join(h.cfg.Library.Root, "memes"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(h.cfg.Library.Root, "memes", "cat.jpg"), []byte("x"), 0644))

	rec = h.request(t, http.MethodPost, fmt.Sprintf("/api/directories/%d/scan", dir.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []events.Type
	for len(got) < 2 {
		select {
		case event := <-sub:
			got = append(got, event.Type)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for events, got %v", got)
		}
	}
	assert.Contains(t, got, events.ItemCreated)
	assert.Contains(t, got, events.ScanCompleted)
}
