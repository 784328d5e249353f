// Package status defines the caption-generation state machine for catalog
// items. Every mutation of an item's status goes through the transition
// table here; ad-hoc comparisons against raw strings or wire codes are not
// allowed anywhere else.
package status

import "fmt"

// State is the caption-generation state of a catalog item.
type State string

// States a catalog item can be in.
const (
	// NotStarted indicates no caption has been requested.
	NotStarted State = "not_started"
	// InQueue indicates the worker accepted the job but has not picked it up.
	InQueue State = "in_queue"
	// Processing indicates the worker is generating the caption.
	Processing State = "processing"
	// Done indicates a caption was delivered.
	Done State = "done"
	// Failed indicates the worker reported a permanent failure.
	Failed State = "failed"
	// Removing indicates a cancellation was requested and is awaiting the
	// worker's acknowledgement.
	Removing State = "removing"
)

// Wire codes used by the captioning worker's status callbacks.
const (
	codeNotStarted = 0
	codeInQueue    = 1
	codeProcessing = 2
	codeDone       = 3
	codeRemoving   = 4
	codeFailed     = 5
)

// transitions is the set of legal state changes. Absence means the
// transition is rejected. There is deliberately no edge out of a stuck
// Processing state: no timer ages items out.
var transitions = map[State][]State{
	NotStarted: {InQueue},
	Done:       {InQueue},
	Failed:     {InQueue},
	InQueue:    {Processing, Removing},
	Processing: {Done, Failed},
	Removing:   {NotStarted},
}

// FromCode maps a worker wire code to a State.
func FromCode(code int) (State, error) {
	switch code {
	case codeNotStarted:
		return NotStarted, nil
	case codeInQueue:
		return InQueue, nil
	case codeProcessing:
		return Processing, nil
	case codeDone:
		return Done, nil
	case codeRemoving:
		return Removing, nil
	case codeFailed:
		return Failed, nil
	default:
		return "", fmt.Errorf("unknown status code %d", code)
	}
}

// Code returns the worker wire code for a State.
func (s State) Code() int {
	switch s {
	case NotStarted:
		return codeNotStarted
	case InQueue:
		return codeInQueue
	case Processing:
		return codeProcessing
	case Done:
		return codeDone
	case Removing:
		return codeRemoving
	case Failed:
		return codeFailed
	}
	return -1
}

// Valid reports whether s is a known state.
func (s State) Valid() bool {
	switch s {
	case NotStarted, InQueue, Processing, Done, Failed, Removing:
		return true
	}
	return false
}

// CanTransition reports whether moving from one state to another is legal.
func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanGenerate reports whether a generate request is accepted in state s.
func CanGenerate(s State) bool {
	return CanTransition(s, InQueue)
}

// CanCancel reports whether a cancel request is accepted in state s.
// Cancellation is only defined while the job is still queued; there is no
// cancellation path once the worker is processing.
func CanCancel(s State) bool {
	return s == InQueue
}
