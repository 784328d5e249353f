package bulk

import (
	"sync"
	"time"
)

// Operation is the durable record of an in-flight bulk caption run. The
// snapshot is fixed at creation and never grows or shrinks; items created
// after the start are never retroactively included.
type Operation struct {
	ID              string
	SnapshotItemIDs []int
	TotalCount      int
	StartedAt       time.Time
	Filter          Filter
}

// Store persists bulk operations keyed by the requesting context. One
// operation per key; operations across keys are independent and unguarded.
type Store interface {
	Get(contextKey string) (*Operation, bool)
	Put(contextKey string, op *Operation)
	Delete(contextKey string)
}

// MemoryStore is an in-process Store. Operations do not survive a restart,
// matching their request-context lifetime.
type MemoryStore struct {
	mu  sync.RWMutex
	ops map[string]*Operation
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ops: make(map[string]*Operation),
	}
}

// Get returns the operation for a context key.
func (s *MemoryStore) Get(contextKey string) (*Operation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	op, ok := s.ops[contextKey]
	return op, ok
}

// Put stores the operation for a context key, replacing any previous one.
func (s *MemoryStore) Put(contextKey string, op *Operation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops[contextKey] = op
}

// Delete removes the operation for a context key.
func (s *MemoryStore) Delete(contextKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ops, contextKey)
}
