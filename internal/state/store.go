package state

import (
	"sync"
	"time"

	"neonpos/backend/internal/domain"
)

// Store is the single source of truth. It owns the canonical state
// snapshot and applies every transition synchronously through Dispatch,
// the only sanctioned mutation path. Construction, provisioning (see
// NewContext), and teardown are the caller's responsibility; there is
// no package-level instance.
type Store struct {
	mu      sync.RWMutex
	reducer Reducer
	state   domain.StoreState
}

// New builds a store around an explicit initial state. ResetData
// restores exactly this snapshot.
func New(initial domain.StoreState) *Store {
	return &Store{
		reducer: NewReducer(initial),
		state:   initial,
	}
}

// NewSeeded builds a store populated with the demo dataset anchored at
// the current time.
func NewSeeded() *Store {
	return New(Seed(time.Now().UTC()))
}

// Snapshot returns the current state. Callers must treat it and every
// nested collection as read-only; all mutation goes through Dispatch.
func (s *Store) Snapshot() domain.StoreState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies one action atomically and returns the resulting
// snapshot. An action either fully applies or, for unrecognized
// variants, leaves the state untouched; there is no partial
// application and Dispatch never fails.
func (s *Store) Dispatch(action Action) domain.StoreState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.reducer.Reduce(s.state, action)
	return s.state
}
