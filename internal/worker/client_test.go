package worker_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memedex/memedex/internal/worker"
)

func TestEnqueue(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var got worker.Job
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/add_job", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := worker.New(srv.URL, time.Second)
		err := client.Enqueue(context.Background(), worker.Job{
			ItemID:    42,
			ImagePath: "memes_a/cat.jpg",
			Model:     "Florence-2-base",
		})

		require.NoError(t, err)
		assert.Equal(t, 42, got.ItemID)
		assert.Equal(t, "memes_a/cat.jpg", got.ImagePath)
		assert.Equal(t, "Florence-2-base", got.Model)
	})

	t.Run("AnyTwoHundredIsSuccess", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		client := worker.New(srv.URL, time.Second)
		assert.NoError(t, client.Enqueue(context.Background(), worker.Job{ItemID: 1}))
	})

	t.Run("NonTwoHundredFails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))
		defer srv.Close()

		client := worker.New(srv.URL, time.Second)
		err := client.Enqueue(context.Background(), worker.Job{ItemID: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "422")
	})

	t.Run("Unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		srv.Close() // Closed before the call

		client := worker.New(srv.URL, time.Second)
		assert.Error(t, client.Enqueue(context.Background(), worker.Job{ItemID: 1}))
	})
}

func TestDequeue(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := worker.New(srv.URL, time.Second)
		require.NoError(t, client.Dequeue(context.Background(), 7))
		assert.Equal(t, "/remove_job/7", gotPath)
	})

	t.Run("NotFoundFails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := worker.New(srv.URL, time.Second)
		assert.Error(t, client.Dequeue(context.Background(), 7))
	})
}

func TestTrailingSlashTrimmed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/add_job", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := worker.New(srv.URL+"/", time.Second)
	assert.NoError(t, client.Enqueue(context.Background(), worker.Job{ItemID: 1}))
}
