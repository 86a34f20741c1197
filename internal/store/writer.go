package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/501wxrit/TripDiary-PWA/internal/persist"
	"github.com/501wxrit/TripDiary-PWA/internal/storage"
)

// writeJob is one unit of work for the background writer: either a state
// snapshot to serialize and store, an eviction of the persisted record, or
// a barrier used by flush.
type writeJob struct {
	state   persist.State
	evict   bool
	barrier chan struct{}
}

// writer is a single-goroutine FIFO queue between the store and the
// durable adapter. One worker keeps writes ordered (last mutation wins on
// the single storage key); the buffered channel keeps callers from ever
// blocking on storage latency.
type writer struct {
	jobs    chan writeJob
	done    chan struct{}
	stopped sync.Once
	wg      sync.WaitGroup

	adapter *storage.Adapter
	log     *slog.Logger
}

const writerQueueSize = 128

func newWriter(adapter *storage.Adapter, log *slog.Logger) *writer {
	w := &writer{
		jobs:    make(chan writeJob, writerQueueSize),
		done:    make(chan struct{}),
		adapter: adapter,
		log:     log,
	}
	w.wg.Add(1)
	go w.run()
	return w
}

// enqueue submits a job without blocking the caller on storage latency.
// When the queue is full an older pending job is discarded to make room:
// everything writes to the single storage key, so the newest snapshot (or
// eviction) supersedes every older one and is the write that must land.
// Flush barriers are never discarded; a displaced barrier is re-queued
// behind the job that displaced it.
func (w *writer) enqueue(j writeJob) {
	pending := []writeJob{j}
	for len(pending) > 0 {
		select {
		case <-w.done:
			return
		default:
		}
		select {
		case w.jobs <- pending[0]:
			pending = pending[1:]
			continue
		default:
		}
		select {
		case old := <-w.jobs:
			if old.barrier != nil {
				pending = append(pending, old)
				continue
			}
			w.log.Warn("store: persistence queue full, coalescing older snapshot")
		default:
		}
	}
}

// flush waits until all jobs enqueued before the call have been processed.
func (w *writer) flush(ctx context.Context) error {
	barrier := make(chan struct{})
	select {
	case w.jobs <- writeJob{barrier: barrier}:
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-barrier:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// stop drains the queue and waits for the worker to exit. Idempotent.
func (w *writer) stop() {
	w.stopped.Do(func() { close(w.done) })
	w.wg.Wait()
}

func (w *writer) run() {
	defer w.wg.Done()
	for {
		select {
		case j := <-w.jobs:
			w.process(j)
		case <-w.done:
			// Drain whatever was queued before the stop signal.
			for {
				select {
				case j := <-w.jobs:
					w.process(j)
				default:
					return
				}
			}
		}
	}
}

func (w *writer) process(j writeJob) {
	if j.barrier != nil {
		close(j.barrier)
		return
	}
	ctx := context.Background()
	if j.evict {
		w.adapter.Remove(ctx, persist.StorageKey)
		return
	}
	data, err := persist.Encode(j.state)
	if err != nil {
		w.log.Warn("store: failed to encode state for persistence", "error", err)
		return
	}
	w.adapter.Set(ctx, persist.StorageKey, data)
}
