// Package bulk coordinates caption generation across a filtered set of
// catalog items. A bulk run snapshots the matching item IDs up front, fans
// out one dispatch call per item, and is then observed through polling
// until every snapshotted item settles.
package bulk

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/memedex/memedex/internal/dispatch"
	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
	"github.com/memedex/memedex/internal/ent/generated/tag"
	"github.com/memedex/memedex/internal/ent/generated/watcheddirectory"
	"github.com/memedex/memedex/internal/events"
	"github.com/memedex/memedex/internal/status"
)

var (
	// ErrNoOperation is returned when no bulk operation exists for the
	// requesting context.
	ErrNoOperation = errors.New("no bulk operation in progress")

	// ErrOperationActive is returned when a context that already has an
	// operation in flight tries to start another.
	ErrOperationActive = errors.New("bulk operation already in progress")

	// ErrInvalidFilter is returned when the filter references a directory
	// or tag that does not exist. Checked before any dispatch happens.
	ErrInvalidFilter = errors.New("invalid filter")
)

// Filter selects the catalog items a bulk run covers. Zero-value fields are
// ignored; set fields are combined with AND.
type Filter struct {
	DirectoryID      *int `json:"directory_id,omitempty"`
	TagID            *int `json:"tag_id,omitempty"`
	NeedsDescription bool `json:"needs_description,omitempty"`
}

// StartResult reports the fan-out outcome of a bulk start.
type StartResult struct {
	OperationID string `json:"operation_id"`
	Total       int    `json:"total"`
	Queued      int    `json:"queued"`
	Failed      int    `json:"failed"`
}

// PollStatus is a point-in-time view of a running operation.
type PollStatus struct {
	Counts     map[string]int `json:"status_counts"`
	Total      int            `json:"total"`
	IsComplete bool           `json:"is_complete"`
	StartedAt  time.Time      `json:"started_at"`
}

// CancelResult reports how many queued items were actually withdrawn.
type CancelResult struct {
	Cancelled int `json:"cancelled"`
	Total     int `json:"total"`
}

// Coordinator runs bulk caption operations.
type Coordinator struct {
	db         *generated.Client
	dispatcher *dispatch.Dispatcher
	store      Store
	bus        *events.Bus
	logger     zerolog.Logger
}

// Option is a functional option for configuring the coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// WithEventBus sets the event bus.
func WithEventBus(bus *events.Bus) Option {
	return func(c *Coordinator) {
		c.bus = bus
	}
}

// New creates a new coordinator.
func New(db *generated.Client, dispatcher *dispatch.Dispatcher, store Store, opts ...Option) *Coordinator {
	c := &Coordinator{
		db:         db,
		dispatcher: dispatcher,
		store:      store,
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Coordinator) publish(event events.Event) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}

// Start resolves the filter into a frozen snapshot, persists the operation
// record, then dispatches one generate call per snapshotted item. A failed
// dispatch marks that item failed and moves on; one item never aborts the
// loop. Items that are already queued or processing count as queued.
func (c *Coordinator) Start(ctx context.Context, contextKey string, filter Filter, model string) (StartResult, error) {
	if _, active := c.store.Get(contextKey); active {
		return StartResult{}, ErrOperationActive
	}

	if err := c.validateFilter(ctx, filter); err != nil {
		return StartResult{}, err
	}

	items, err := c.resolveFilter(ctx, filter)
	if err != nil {
		return StartResult{}, err
	}

	op := &Operation{
		ID:         ulid.Make().String(),
		TotalCount: len(items),
		StartedAt:  time.Now(),
		Filter:     filter,
	}
	op.SnapshotItemIDs = make([]int, len(items))
	for i, item := range items {
		op.SnapshotItemIDs[i] = item.ID
	}
	c.store.Put(contextKey, op)

	result := StartResult{
		OperationID: op.ID,
		Total:       len(items),
	}

	for _, item := range items {
		err := c.dispatcher.Generate(ctx, item, model)
		switch {
		case err == nil:
			result.Queued++
		case errors.Is(err, dispatch.ErrAlreadyQueued):
			// Already in flight from an earlier request; nothing to do.
			result.Queued++
		default:
			result.Failed++
			if markErr := c.dispatcher.MarkFailed(ctx, item); markErr != nil {
				c.logger.Error().
					Err(markErr).
					Int("item_id", item.ID).
					Msg("failed to mark item failed")
			}
		}
	}

	c.logger.Info().
		Str("operation_id", op.ID).
		Int("total", result.Total).
		Int("queued", result.Queued).
		Int("failed", result.Failed).
		Msg("bulk operation started")
	c.publish(events.Event{
		Type:    events.BulkStarted,
		Subject: op,
		Data: map[string]any{
			"operation_id": op.ID,
			"total":        result.Total,
			"queued":       result.Queued,
			"failed":       result.Failed,
		},
	})

	return result, nil
}

// Poll reports current progress over exactly the snapshotted item set. It
// never re-evaluates the filter. When the operation is detected complete
// the record is deleted, so the next poll reports ErrNoOperation.
func (c *Coordinator) Poll(ctx context.Context, contextKey string) (PollStatus, error) {
	op, ok := c.store.Get(contextKey)
	if !ok {
		return PollStatus{}, ErrNoOperation
	}

	items, err := c.db.CatalogItem.Query().
		Where(catalogitem.IDIn(op.SnapshotItemIDs...)).
		All(ctx)
	if err != nil {
		return PollStatus{}, err
	}

	counts := map[string]int{
		string(status.NotStarted): 0,
		string(status.InQueue):    0,
		string(status.Processing): 0,
		string(status.Done):       0,
		string(status.Failed):     0,
	}
	for _, item := range items {
		bucket := status.State(item.Status)
		// A cancellation in flight still occupies the queue.
		if bucket == status.Removing {
			bucket = status.InQueue
		}
		counts[string(bucket)]++
	}

	result := PollStatus{
		Counts:    counts,
		Total:     op.TotalCount,
		StartedAt: op.StartedAt,
	}
	result.IsComplete = counts[string(status.InQueue)]+counts[string(status.Processing)] == 0 &&
		counts[string(status.NotStarted)] == 0

	if result.IsComplete {
		c.store.Delete(contextKey)
		c.logger.Info().
			Str("operation_id", op.ID).
			Int("done", counts[string(status.Done)]).
			Int("failed", counts[string(status.Failed)]).
			Msg("bulk operation completed")
		c.publish(events.Event{
			Type:    events.BulkCompleted,
			Subject: op,
			Data: map[string]any{
				"operation_id": op.ID,
				"done":         counts[string(status.Done)],
				"failed":       counts[string(status.Failed)],
			},
		})
	}

	return result, nil
}

// Cancel withdraws every snapshotted item still waiting in the queue, then
// deletes the operation record no matter how many cancellations succeeded.
func (c *Coordinator) Cancel(ctx context.Context, contextKey string) (CancelResult, error) {
	op, ok := c.store.Get(contextKey)
	if !ok {
		return CancelResult{}, ErrNoOperation
	}
	defer c.store.Delete(contextKey)

	queued, err := c.db.CatalogItem.Query().
		Where(
			catalogitem.IDIn(op.SnapshotItemIDs...),
			catalogitem.StatusEQ(catalogitem.StatusInQueue),
		).
		All(ctx)
	if err != nil {
		return CancelResult{}, err
	}

	result := CancelResult{Total: len(queued)}
	for _, item := range queued {
		if err := c.dispatcher.Cancel(ctx, item); err != nil {
			c.logger.Warn().
				Err(err).
				Int("item_id", item.ID).
				Msg("failed to cancel queued item")
			continue
		}
		result.Cancelled++
	}

	c.logger.Info().
		Str("operation_id", op.ID).
		Int("cancelled", result.Cancelled).
		Int("queued", result.Total).
		Msg("bulk operation cancelled")
	c.publish(events.Event{
		Type:    events.BulkCancelled,
		Subject: op,
		Data: map[string]any{
			"operation_id": op.ID,
			"cancelled":    result.Cancelled,
		},
	})

	return result, nil
}

// validateFilter rejects references to missing directories or tags before
// any dispatch happens.
func (c *Coordinator) validateFilter(ctx context.Context, filter Filter) error {
	if filter.DirectoryID != nil {
		exists, err := c.db.WatchedDirectory.Query().
			Where(watcheddirectory.ID(*filter.DirectoryID)).
			Exist(ctx)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: directory %d not found", ErrInvalidFilter, *filter.DirectoryID)
		}
	}

	if filter.TagID != nil {
		exists, err := c.db.Tag.Query().
			Where(tag.ID(*filter.TagID)).
			Exist(ctx)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: tag %d not found", ErrInvalidFilter, *filter.TagID)
		}
	}

	return nil
}

// resolveFilter evaluates the filter into the item snapshot. The
// needs-description predicate treats null and blank descriptions as
// needing one, and always includes not_started items.
func (c *Coordinator) resolveFilter(ctx context.Context, filter Filter) ([]*generated.CatalogItem, error) {
	query := c.db.CatalogItem.Query()
	if filter.DirectoryID != nil {
		query = query.Where(catalogitem.DirectoryID(*filter.DirectoryID))
	}
	if filter.TagID != nil {
		query = query.Where(catalogitem.HasTagsWith(tag.ID(*filter.TagID)))
	}

	items, err := query.Order(generated.Asc(catalogitem.FieldID)).All(ctx)
	if err != nil {
		return nil, err
	}

	if !filter.NeedsDescription {
		return items, nil
	}

	filtered := items[:0]
	for _, item := range items {
		if needsDescription(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func needsDescription(item *generated.CatalogItem) bool {
	if item.Status == catalogitem.StatusNotStarted {
		return true
	}
	return item.Description == nil || strings.TrimSpace(*item.Description) == ""
}
