package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memedex/memedex/internal/status"
)

func TestCodeRoundTrip(t *testing.T) {
	states := []status.State{
		status.NotStarted,
		status.InQueue,
		status.Processing,
		status.Done,
		status.Removing,
		status.Failed,
	}

	for _, s := range states {
		got, err := status.FromCode(s.Code())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestFromCode_Unknown(t *testing.T) {
	for _, code := range []int{-1, 6, 42} {
		_, err := status.FromCode(code)
		assert.Error(t, err, "code %d should be rejected", code)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from status.State
		to   status.State
		ok   bool
	}{
		{"GenerateFromNotStarted", status.NotStarted, status.InQueue, true},
		{"GenerateFromDone", status.Done, status.InQueue, true},
		{"GenerateFromFailed", status.Failed, status.InQueue, true},
		{"WorkerPickup", status.InQueue, status.Processing, true},
		{"WorkerDone", status.Processing, status.Done, true},
		{"WorkerFailed", status.Processing, status.Failed, true},
		{"CancelRequest", status.InQueue, status.Removing, true},
		{"CancelAcknowledged", status.Removing, status.NotStarted, true},

		{"GenerateWhileQueued", status.InQueue, status.InQueue, false},
		{"GenerateWhileProcessing", status.Processing, status.InQueue, false},
		{"LateProcessingAfterDone", status.Done, status.Processing, false},
		{"DoneWithoutProcessing", status.InQueue, status.Done, false},
		{"CancelWhileProcessing", status.Processing, status.Removing, false},
		{"RemovingToDone", status.Removing, status.Done, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, status.CanTransition(tt.from, tt.to))
		})
	}
}

func TestCanGenerate(t *testing.T) {
	assert.True(t, status.CanGenerate(status.NotStarted))
	assert.True(t, status.CanGenerate(status.Done))
	assert.True(t, status.CanGenerate(status.Failed))
	assert.False(t, status.CanGenerate(status.InQueue))
	assert.False(t, status.CanGenerate(status.Processing))
	assert.False(t, status.CanGenerate(status.Removing))
}

func TestCanCancel(t *testing.T) {
	assert.True(t, status.CanCancel(status.InQueue))
	assert.False(t, status.CanCancel(status.Processing))
	assert.False(t, status.CanCancel(status.NotStarted))
	assert.False(t, status.CanCancel(status.Removing))
}

func TestValid(t *testing.T) {
	assert.True(t, status.State("in_queue").Valid())
	assert.False(t, status.State("queued").Valid())
	assert.False(t, status.State("").Valid())
}
