// Package apitypes provides request and response types for the memedex
// HTTP API. Kept separate from internal packages so external clients can
// import them.
package apitypes

import "time"

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Stats summarizes the catalog.
type Stats struct {
	Directories int            `json:"directories"`
	Items       int            `json:"items"`
	ByStatus    map[string]int `json:"by_status"`
}

// Directory represents a watched directory.
type Directory struct {
	ID                   int        `json:"id"`
	Name                 string     `json:"name"`
	ScanFrequencyMinutes *int       `json:"scan_frequency_minutes"`
	LastScannedAt        *time.Time `json:"last_scanned_at"`
	ScanStatus           string     `json:"scan_status"`
	LastScanError        *string    `json:"last_scan_error"`
	CurrentlyScanning    bool       `json:"currently_scanning"`
	LastScanDurationMs   int64      `json:"last_scan_duration_ms"`
	ItemCount            int        `json:"item_count,omitempty"`
}

// CreateDirectoryRequest creates a watched directory.
type CreateDirectoryRequest struct {
	Name                 string `json:"name"`
	ScanFrequencyMinutes *int   `json:"scan_frequency_minutes"`
}

// UpdateDirectoryRequest edits a watched directory. Nil fields are left
// unchanged; an explicit null scan frequency disables auto-scan.
type UpdateDirectoryRequest struct {
	ScanFrequencyMinutes *int `json:"scan_frequency_minutes"`
}

// ScanResponse reports the outcome of a manual scan.
type ScanResponse struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

// Item represents a catalog item.
type Item struct {
	ID          int     `json:"id"`
	DirectoryID int     `json:"directory_id"`
	Filename    string  `json:"filename"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Tags        []Tag   `json:"tags,omitempty"`
}

// GenerateRequest requests caption generation for an item.
type GenerateRequest struct {
	Model string `json:"model,omitempty"`
}

// Tag represents a tag.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CreateTagRequest creates a tag.
type CreateTagRequest struct {
	Name string `json:"name"`
}

// StatusCallback is the worker's status report payload.
type StatusCallback struct {
	Data struct {
		ItemID int `json:"item_id"`
		Status int `json:"status"`
	} `json:"data"`
}

// DescriptionCallback is the worker's caption delivery payload.
type DescriptionCallback struct {
	Data struct {
		ItemID      int    `json:"item_id"`
		Description string `json:"description"`
	} `json:"data"`
}

// BulkGenerateRequest starts a bulk caption operation.
type BulkGenerateRequest struct {
	DirectoryID      *int   `json:"directory_id,omitempty"`
	TagID            *int   `json:"tag_id,omitempty"`
	NeedsDescription bool   `json:"needs_description,omitempty"`
	Model            string `json:"model,omitempty"`
}

// BulkGenerateResponse reports the fan-out outcome of a bulk start.
type BulkGenerateResponse struct {
	OperationID string `json:"operation_id"`
	Total       int    `json:"total"`
	Queued      int    `json:"queued"`
	Failed      int    `json:"failed"`
}

// BulkStatusResponse is a point-in-time view of a bulk operation. When no
// operation is in progress only Active is set.
type BulkStatusResponse struct {
	Active       bool           `json:"active"`
	StatusCounts map[string]int `json:"status_counts,omitempty"`
	Total        int            `json:"total,omitempty"`
	IsComplete   bool           `json:"is_complete,omitempty"`
	StartedAt    *time.Time     `json:"started_at,omitempty"`
}

// BulkCancelResponse reports how many queued jobs were withdrawn.
type BulkCancelResponse struct {
	Cancelled int `json:"cancelled"`
	Total     int `json:"total"`
}
