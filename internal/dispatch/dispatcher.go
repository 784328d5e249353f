// Package dispatch translates caption generate and cancel intents into
// calls against the external worker and drives catalog items through the
// status state machine.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/rs/zerolog"

	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
	"github.com/memedex/memedex/internal/events"
	"github.com/memedex/memedex/internal/status"
	"github.com/memedex/memedex/internal/worker"
)

var (
	// ErrAlreadyQueued is returned when generation is requested for an item
	// that is already queued or being processed.
	ErrAlreadyQueued = errors.New("caption generation already in progress")

	// ErrGenerationUnavailable is returned when the worker rejects a job or
	// cannot be reached. Non-2xx and unreachable are deliberately
	// indistinguishable to callers.
	ErrGenerationUnavailable = errors.New("caption generation unavailable")

	// ErrNotCancellable is returned when cancellation is requested for an
	// item that is not waiting in the queue.
	ErrNotCancellable = errors.New("item is not queued")

	// ErrInvalidTransition is returned when a callback reports a status the
	// state machine does not allow from the item's current state.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// WorkerClient is the outbound interface to the captioning worker.
type WorkerClient interface {
	Enqueue(ctx context.Context, job worker.Job) error
	Dequeue(ctx context.Context, itemID int) error
}

// Dispatcher coordinates worker calls with item status updates.
type Dispatcher struct {
	db           *generated.Client
	worker       WorkerClient
	bus          *events.Bus
	defaultModel string
	logger       zerolog.Logger
}

// Option is a functional option for configuring the dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithEventBus sets the event bus for publishing status change events.
func WithEventBus(bus *events.Bus) Option {
	return func(d *Dispatcher) {
		d.bus = bus
	}
}

// New creates a new dispatcher.
func New(db *generated.Client, workerClient WorkerClient, defaultModel string, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		db:           db,
		worker:       workerClient,
		defaultModel: defaultModel,
		logger:       zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Generate submits a caption job for the item. Items already in_queue or
// processing are rejected with ErrAlreadyQueued. A worker failure surfaces
// as ErrGenerationUnavailable and leaves the item's status untouched; no
// retry is attempted here.
func (d *Dispatcher) Generate(ctx context.Context, item *generated.CatalogItem, model string) error {
	current := status.State(item.Status)
	if !status.CanGenerate(current) {
		return fmt.Errorf("%w: item %d is %s", ErrAlreadyQueued, item.ID, current)
	}

	if model == "" {
		model = d.defaultModel
	}

	dir, err := item.QueryDirectory().Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load item directory: %w", err)
	}

	job := worker.Job{
		ItemID:    item.ID,
		ImagePath: path.Join(dir.Name, item.Filename),
		Model:     model,
	}
	if err := d.worker.Enqueue(ctx, job); err != nil {
		d.logger.Warn().
			Err(err).
			Int("item_id", item.ID).
			Msg("worker enqueue failed")
		return fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}

	_, err = d.setStatus(ctx, item, status.InQueue)
	return err
}

// Cancel withdraws a queued caption job. Only in_queue items can be
// cancelled. The item moves to removing before the worker call; a
// successful dequeue settles it at not_started, a failed one leaves it at
// removing and surfaces the error so the caller can retry.
func (d *Dispatcher) Cancel(ctx context.Context, item *generated.CatalogItem) error {
	current := status.State(item.Status)
	if !status.CanCancel(current) {
		return fmt.Errorf("%w: item %d is %s", ErrNotCancellable, item.ID, current)
	}

	item, err := d.setStatus(ctx, item, status.Removing)
	if err != nil {
		return err
	}

	if err := d.worker.Dequeue(ctx, item.ID); err != nil {
		d.logger.Warn().
			Err(err).
			Int("item_id", item.ID).
			Msg("worker dequeue failed, item stays at removing")
		return fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}

	_, err = d.setStatus(ctx, item, status.NotStarted)
	return err
}

// ApplyStatus applies a worker-reported status to an item, enforcing the
// state machine. Transitions outside the table are rejected with
// ErrInvalidTransition.
func (d *Dispatcher) ApplyStatus(ctx context.Context, item *generated.CatalogItem, to status.State) (*generated.CatalogItem, error) {
	current := status.State(item.Status)
	if !status.CanTransition(current, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, to)
	}

	return d.setStatus(ctx, item, to)
}

// SetDescription stores a worker-delivered caption and emits a description
// change event for downstream consumers.
func (d *Dispatcher) SetDescription(ctx context.Context, item *generated.CatalogItem, description string) (*generated.CatalogItem, error) {
	updated, err := d.db.CatalogItem.UpdateOne(item).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	d.publish(events.Event{
		Type:    events.ItemDescriptionChanged,
		Subject: updated,
		Data: map[string]any{
			"item_id": updated.ID,
		},
	})

	return updated, nil
}

// MarkFailed forces an item to failed, bypassing the transition table.
// Used by the bulk coordinator when a dispatch call fails, so the item is
// visibly failed instead of stuck at its previous state.
func (d *Dispatcher) MarkFailed(ctx context.Context, item *generated.CatalogItem) error {
	_, err := d.setStatus(ctx, item, status.Failed)
	return err
}

func (d *Dispatcher) setStatus(ctx context.Context, item *generated.CatalogItem, to status.State) (*generated.CatalogItem, error) {
	from := status.State(item.Status)

	updated, err := d.db.CatalogItem.UpdateOne(item).
		SetStatus(catalogitem.Status(to)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update item status: %w", err)
	}

	d.logger.Debug().
		Int("item_id", item.ID).
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("item status changed")
	d.publish(events.Event{
		Type:    events.ItemStatusChanged,
		Subject: updated,
		Data: map[string]any{
			"item_id": updated.ID,
			"from":    string(from),
			"to":      string(to),
		},
	})

	return updated, nil
}

func (d *Dispatcher) publish(event events.Event) {
	if d.bus != nil {
		d.bus.Publish(event)
	}
}
