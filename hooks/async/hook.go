// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    MissEvery: 100, // sample logs: ~every 100th miss
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cache := memocache.NewSync(memocache.SyncOptions[Params, float64]{
//	    Generator: price,
//	    Hooks:     hooks, // or `raw` if you don’t want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/memocache"
)

// Hooks forwards events to inner on background workers.
// Events are dropped when the queue is full; the cache never blocks on it.
type Hooks struct {
	inner memocache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once

	// mu guards closed so try never sends on a closed queue.
	mu     sync.RWMutex
	closed bool
}

var _ memocache.Hooks = (*Hooks)(nil)

func New(inner memocache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers.
// Events sent after Close are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) Miss(k any)           { h.try(func() { h.inner.Miss(k) }) }
func (h *Hooks) Coalesced(k any)      { h.try(func() { h.inner.Coalesced(k) }) }
func (h *Hooks) StaleDiscarded(k any) { h.try(func() { h.inner.StaleDiscarded(k) }) }
func (h *Hooks) Erased(k any)         { h.try(func() { h.inner.Erased(k) }) }
func (h *Hooks) Cleared(n int)        { h.try(func() { h.inner.Cleared(n) }) }
func (h *Hooks) GeneratorFailed(k any, err error) {
	h.try(func() { h.inner.GeneratorFailed(k, err) })
}
