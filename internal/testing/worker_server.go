package testing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/memedex/memedex/internal/worker"
)

// FakeWorker is an in-process stand-in for the captioning worker service.
// It records submitted and removed jobs and lets tests control the status
// codes it answers with.
type FakeWorker struct {
	Server *httptest.Server

	mu              sync.Mutex
	jobs            []worker.Job
	removed         []int
	addJobStatus    int
	removeJobStatus int
}

// NewFakeWorker starts a fake worker HTTP server. The server is closed
// automatically when the test completes.
func NewFakeWorker(t *testing.T) *FakeWorker {
	t.Helper()

	fw := &FakeWorker{
		addJobStatus:    http.StatusOK,
		removeJobStatus: http.StatusOK,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /add_job", fw.handleAddJob)
	mux.HandleFunc("DELETE /remove_job/{id}", fw.handleRemoveJob)

	fw.Server = httptest.NewServer(mux)
	t.Cleanup(fw.Server.Close)

	return fw
}

// URL returns the fake worker's base URL.
func (fw *FakeWorker) URL() string {
	return fw.Server.URL
}

// Jobs returns a copy of all jobs submitted so far.
func (fw *FakeWorker) Jobs() []worker.Job {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	jobs := make([]worker.Job, len(fw.jobs))
	copy(jobs, fw.jobs)
	return jobs
}

// Removed returns a copy of all item IDs removed so far.
func (fw *FakeWorker) Removed() []int {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	ids := make([]int, len(fw.removed))
	copy(ids, fw.removed)
	return ids
}

// SetAddJobStatus changes the status code returned for job submissions.
func (fw *FakeWorker) SetAddJobStatus(code int) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.addJobStatus = code
}

// SetRemoveJobStatus changes the status code returned for job removals.
func (fw *FakeWorker) SetRemoveJobStatus(code int) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.removeJobStatus = code
}

func (fw *FakeWorker) handleAddJob(w http.ResponseWriter, r *http.Request) {
	var job worker.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.addJobStatus >= 200 && fw.addJobStatus < 300 {
		fw.jobs = append(fw.jobs, job)
	}
	w.WriteHeader(fw.addJobStatus)
}

func (fw *FakeWorker) handleRemoveJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.removeJobStatus >= 200 && fw.removeJobStatus < 300 {
		fw.removed = append(fw.removed, id)
	}
	w.WriteHeader(fw.removeJobStatus)
}
