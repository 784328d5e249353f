package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memedex/memedex/internal/events"
)

func receiveEvent(t *testing.T, sub events.Subscription) events.Event {
	t.Helper()
	select {
	case event := <-sub:
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return events.Event{}
	}
}

func TestPublishSubscribe(t *testing.T) {
	t.Run("AllEvents", func(t *testing.T) {
		bus := events.New()
		defer bus.Close()

		sub := bus.Subscribe()

		bus.Publish(events.Event{Type: events.ScanStarted})
		bus.Publish(events.Event{Type: events.ItemStatusChanged})

		assert.Equal(t, events.ScanStarted, receiveEvent(t, sub).Type)
		assert.Equal(t, events.ItemStatusChanged, receiveEvent(t, sub).Type)
	})

	t.Run("FilteredByType", func(t *testing.T) {
		bus := events.New()
		defer bus.Close()

		sub := bus.Subscribe(events.ItemDescriptionChanged)

		bus.Publish(events.Event{Type: events.ScanStarted})
		bus.Publish(events.Event{Type: events.ItemDescriptionChanged})

		event := receiveEvent(t, sub)
		assert.Equal(t, events.ItemDescriptionChanged, event.Type)

		select {
		case extra := <-sub:
			t.Fatalf("unexpected event %q", extra.Type)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("TimestampSetWhenZero", func(t *testing.T) {
		bus := events.New()
		defer bus.Close()

		sub := bus.Subscribe()
		bus.Publish(events.Event{Type: events.BulkStarted})

		event := receiveEvent(t, sub)
		assert.False(t, event.Timestamp.IsZero())
	})
}

func TestPublishDropsWhenBufferFull(t *testing.T) {
	bus := events.New(events.WithBufferSize(1))
	defer bus.Close()

	sub := bus.Subscribe()

	// Second publish must not block even though nobody is draining.
	bus.Publish(events.Event{Type: events.ScanStarted})
	bus.Publish(events.Event{Type: events.ScanCompleted})

	assert.Equal(t, events.ScanStarted, receiveEvent(t, sub).Type)
}

func TestUnsubscribe(t *testing.T) {
	bus := events.New()
	defer bus.Close()

	sub := bus.Subscribe()
	require.Equal(t, 1, bus.SubscriberCount())

	bus.Unsubscribe(sub)
	assert.Equal(t, 0, bus.SubscriberCount())

	_, open := <-sub
	assert.False(t, open, "channel should be closed after unsubscribe")
}

func TestClose(t *testing.T) {
	bus := events.New()

	sub1 := bus.Subscribe()
	sub2 := bus.Subscribe(events.ScanFailed)

	bus.Close()

	_, open := <-sub1
	assert.False(t, open)
	_, open = <-sub2
	assert.False(t, open)
	assert.Equal(t, 0, bus.SubscriberCount())
}
