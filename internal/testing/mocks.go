// Package testing provides mock implementations for use in tests.
// This package should only be imported by test files (*_test.go).
package testing

import (
	"context"
	"sync"
	"testing"

	_ "github.com/mattn/go-sqlite3" // Required for SQLite database driver in tests.

	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/ent/generated/enttest"
	"github.com/memedex/memedex/internal/worker"
)

// NewTestDB creates an in-memory Ent database for testing.
// The database is automatically closed when the test completes.
func NewTestDB(t *testing.T) *generated.Client {
	t.Helper()
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// MockWorker is a mock captioning worker client that records calls.
type MockWorker struct {
	mu sync.Mutex

	// EnqueueErr, when set, is returned by every Enqueue call.
	EnqueueErr error
	// EnqueueErrFor, when set, is returned for Enqueue calls of specific items.
	EnqueueErrFor map[int]error
	// DequeueErr, when set, is returned by every Dequeue call.
	DequeueErr error

	enqueued []worker.Job
	dequeued []int
}

// Enqueue records the job and returns EnqueueErr.
func (m *MockWorker) Enqueue(_ context.Context, job worker.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.EnqueueErr != nil {
		return m.EnqueueErr
	}
	if err, ok := m.EnqueueErrFor[job.ItemID]; ok {
		return err
	}
	m.enqueued = append(m.enqueued, job)
	return nil
}

// Dequeue records the item ID and returns DequeueErr.
func (m *MockWorker) Dequeue(_ context.Context, itemID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DequeueErr != nil {
		return m.DequeueErr
	}
	m.dequeued = append(m.dequeued, itemID)
	return nil
}

// Enqueued returns a copy of all recorded Enqueue calls.
func (m *MockWorker) Enqueued() []worker.Job {
	m.mu.Lock()
	defer m.mu.Unlock()

	jobs := make([]worker.Job, len(m.enqueued))
	copy(jobs, m.enqueued)
	return jobs
}

// Dequeued returns a copy of all recorded Dequeue calls.
func (m *MockWorker) Dequeued() []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int, len(m.dequeued))
	copy(ids, m.dequeued)
	return ids
}

// Reset clears all recorded calls and configured errors.
func (m *MockWorker) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enqueued = nil
	m.dequeued = nil
	m.EnqueueErr = nil
	m.EnqueueErrFor = nil
	m.DequeueErr = nil
}
