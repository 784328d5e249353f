// Package worker provides the HTTP client for the external captioning
// worker. The worker exposes a small queue API: jobs are added with a POST
// and removed with a DELETE, and the worker reports progress back through
// HTTP callbacks handled by the server package.
package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Job is a caption-generation request sent to the worker.
type Job struct {
	ItemID    int    `json:"item_id"`
	ImagePath string `json:"image_path"` // "<directory>/<filename>" relative to the shared library root
	Model     string `json:"model"`
}

// Client talks to the captioning worker over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option is a functional option for configuring the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a new worker client.
func New(rawURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(rawURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Enqueue submits a caption-generation job to the worker's queue.
// Any 2xx response counts as accepted; everything else is an error.
// No retries happen here - retrying is the caller's decision.
func (c *Client) Enqueue(ctx context.Context, job Job) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/add_job", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach worker: %w", err)
	}
	defer drainAndClose(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("worker rejected job: status %d", resp.StatusCode)
	}

	c.logger.Debug().
		Int("item_id", job.ItemID).
		Str("model", job.Model).
		Msg("job enqueued")
	return nil
}

// Dequeue removes a queued job from the worker's queue.
func (c *Client) Dequeue(ctx context.Context, itemID int) error {
	url := c.baseURL + "/remove_job/" + strconv.Itoa(itemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach worker: %w", err)
	}
	defer drainAndClose(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("worker rejected dequeue: status %d", resp.StatusCode)
	}

	c.logger.Debug().
		Int("item_id", itemID).
		Msg("job dequeued")
	return nil
}

// drainAndClose consumes the response body so the connection can be reused.
func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
