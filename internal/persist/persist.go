// Package persist defines the versioned envelope the state store is
// serialized into. The persisted value under the single storage key is
// {"version": N, "state": {"trips": [...], "vehicles": [...]}}; on load an
// older version is walked through the ordered migration steps before
// hydration.
package persist

import (
	"encoding/json"
	"fmt"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
	"github.com/501wxrit/TripDiary-PWA/internal/strip"
)

// StorageKey is the fixed key the whole persisted state lives under.
const StorageKey = "trip-storage"

// Version is the current schema version. Bump it when the persisted shape
// changes and append a migration step below.
const Version = 3

// State is the persisted slice of the in-memory store: only trips and
// vehicles are durable. Transient fields (currentTrip, loading, error)
// never reach storage.
type State struct {
	Trips    []domain.Trip    `json:"trips"`
	Vehicles []domain.Vehicle `json:"vehicles"`
}

// DefaultState returns the empty-collections state used when nothing has
// been persisted yet or the persisted record is unreadable.
func DefaultState() State {
	return State{Trips: []domain.Trip{}, Vehicles: []domain.Vehicle{}}
}

type envelope struct {
	Version int   `json:"version"`
	State   State `json:"state"`
}

// migration upgrades a state loaded at any version below "to". Each step
// receives the previous step's output; steps run in slice order.
type migration struct {
	to    int
	apply func(State) State
}

// Version 3 introduced the heavy-payload stripping rule, so anything older
// may still carry inline base64 images.
var migrations = []migration{
	{to: 3, apply: stripHeavy},
}

func stripHeavy(s State) State {
	s.Trips = strip.Trips(s.Trips)
	return s
}

// Decode parses a persisted envelope and migrates the state up to the
// current version. A parse failure is corrupt state; the caller is
// expected to fall back to DefaultState rather than abort startup.
func Decode(data []byte) (State, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return State{}, fmt.Errorf("persist.Decode: %w", err)
	}
	s := env.State
	for _, m := range migrations {
		if env.Version < m.to {
			s = m.apply(s)
		}
	}
	if s.Trips == nil {
		s.Trips = []domain.Trip{}
	}
	if s.Vehicles == nil {
		s.Vehicles = []domain.Vehicle{}
	}
	return s, nil
}

// Encode strips heavy payloads from s and wraps it with the current
// version. Stripping on every write keeps the durable record clean even
// when the in-memory copy legitimately holds data URIs mid-upload.
func Encode(s State) ([]byte, error) {
	env := envelope{
		Version: Version,
		State: State{
			Trips:    strip.Trips(s.Trips),
			Vehicles: s.Vehicles,
		},
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("persist.Encode: %w", err)
	}
	return data, nil
}
