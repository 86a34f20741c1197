// Package storage provides the durable key/value layer the state store
// persists through. A Backend is a namespaced async key/value space; the
// Adapter composes a primary backend with an optional legacy store and
// performs a one-time lazy migration from the latter.
//
// The state store never talks to a backend directly — always through the
// Adapter, which also absorbs backend failures: when storage is unavailable
// the application keeps running in-memory-only, so adapter operations
// degrade to logged no-ops instead of returning errors.
package storage

import (
	"context"
	"log/slog"
)

// Backend is the minimal contract a durable key/value backend satisfies.
// Get returns (nil, false, nil) when the key is absent.
type Backend interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Adapter fronts a primary Backend with an optional legacy store.
//
// On a Get miss, if the legacy store holds a value under the same key, the
// value is copied into the primary backend, deleted from the legacy store,
// and returned. The migration is idempotent by construction — a second
// attempt finds nothing left to migrate — and the legacy delete is
// best-effort, so overlapping reads cannot double-migrate into divergence
// (both copy the same bytes; last write wins on a single key).
type Adapter struct {
	primary Backend
	legacy  Backend
	log     *slog.Logger
}

// NewAdapter builds an Adapter. primary may be nil (no durable storage in
// this execution context); legacy may be nil (nothing to migrate from).
func NewAdapter(primary, legacy Backend, log *slog.Logger) *Adapter {
	if log == nil {
		log = slog.Default()
	}
	return &Adapter{primary: primary, legacy: legacy, log: log}
}

// Get reads key from the primary backend, falling back to (and migrating
// from) the legacy store on a miss. Backend failures degrade to "absent".
func (a *Adapter) Get(ctx context.Context, key string) ([]byte, bool) {
	if a.primary == nil {
		return nil, false
	}

	value, ok, err := a.primary.Get(ctx, key)
	if err != nil {
		a.log.Warn("storage: primary read failed", "key", key, "error", err)
		return nil, false
	}
	if ok {
		return value, true
	}

	if a.legacy == nil {
		return nil, false
	}
	value, ok, err = a.legacy.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}

	if err := a.primary.Set(ctx, key, value); err != nil {
		a.log.Warn("storage: legacy migration write failed", "key", key, "error", err)
	}
	if err := a.legacy.Remove(ctx, key); err != nil {
		// Best-effort: a stale legacy copy is harmless, the primary now wins.
		a.log.Warn("storage: legacy cleanup failed", "key", key, "error", err)
	}
	a.log.Info("storage: migrated key from legacy store", "key", key)
	return value, true
}

// Set writes through to the primary backend only. The legacy store is never
// written again after migration.
func (a *Adapter) Set(ctx context.Context, key string, value []byte) {
	if a.primary == nil {
		return
	}
	if err := a.primary.Set(ctx, key, value); err != nil {
		a.log.Warn("storage: write failed", "key", key, "error", err)
	}
}

// Remove deletes key from both backends: the primary always, the legacy
// opportunistically (absence is not an error).
func (a *Adapter) Remove(ctx context.Context, key string) {
	if a.primary != nil {
		if err := a.primary.Remove(ctx, key); err != nil {
			a.log.Warn("storage: primary remove failed", "key", key, "error", err)
		}
	}
	if a.legacy != nil {
		if err := a.legacy.Remove(ctx, key); err != nil {
			a.log.Warn("storage: legacy remove failed", "key", key, "error", err)
		}
	}
}
