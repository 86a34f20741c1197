// Package store holds the single mutable source of truth for trips,
// vehicles, and the current-trip pointer. Mutations are synchronous against
// the in-memory tree — each one is a functional update producing new
// collections — and trigger an asynchronous write-through to durable
// storage as a side effect. Callers never block on persistence; a crash
// between a mutation and its write loses at most that mutation, an
// accepted trade-off of the design.
package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
	"github.com/501wxrit/TripDiary-PWA/internal/persist"
	"github.com/501wxrit/TripDiary-PWA/internal/storage"
)

// Store is the state container. Construct with New, hydrate with Load,
// and Close when done so pending writes drain.
type Store struct {
	mu          sync.RWMutex
	trips       []domain.Trip
	vehicles    []domain.Vehicle
	currentTrip *domain.Trip
	loading     bool
	errMsg      string

	adapter *storage.Adapter
	writer  *writer
	log     *slog.Logger
}

// New builds a Store persisting through adapter. The store starts empty;
// call Load to hydrate from storage.
func New(adapter *storage.Adapter, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		trips:    []domain.Trip{},
		vehicles: []domain.Vehicle{},
		adapter:  adapter,
		writer:   newWriter(adapter, log),
		log:      log,
	}
}

// Load hydrates the store from durable storage. No persisted value means a
// fresh start with defaults; a persisted value that cannot be decoded is
// treated as corrupt and replaced by defaults rather than crashing startup.
func (s *Store) Load(ctx context.Context) {
	state := persist.DefaultState()

	if data, ok := s.adapter.Get(ctx, persist.StorageKey); ok {
		decoded, err := persist.Decode(data)
		if err != nil {
			s.log.Warn("store: persisted state unreadable, starting empty", "error", err)
		} else {
			state = decoded
		}
	}

	s.mu.Lock()
	s.trips = state.Trips
	s.vehicles = state.Vehicles
	s.currentTrip = nil
	s.mu.Unlock()
}

// Close drains pending persistence writes and stops the background writer.
func (s *Store) Close() {
	s.writer.stop()
}

// Flush blocks until every write enqueued before the call has been handed
// to storage. Used by tests and by shutdown paths that want the durability
// window closed before exiting.
func (s *Store) Flush(ctx context.Context) error {
	return s.writer.flush(ctx)
}

// persistLocked snapshots the durable slice of the state and enqueues it.
// Callers must hold mu. The slices are never mutated in place after being
// published, so the snapshot stays stable while the writer serializes it.
func (s *Store) persistLocked() {
	s.writer.enqueue(writeJob{state: persist.State{Trips: s.trips, Vehicles: s.vehicles}})
}

// Trips returns the current trip list. The returned slice must be treated
// as read-only.
func (s *Store) Trips() []domain.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trips
}

// Vehicles returns the current vehicle list. Read-only.
func (s *Store) Vehicles() []domain.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vehicles
}

// CurrentTrip returns the cached current-trip pointer, or nil.
func (s *Store) CurrentTrip() *domain.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentTrip
}

// Loading reports the UI loading flag.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last user-visible error message, or "".
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// SetLoading sets the UI loading flag. Feedback only, not persisted.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// SetError records a user-visible error message. Feedback only, not
// persisted. Pass "" to clear.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}
