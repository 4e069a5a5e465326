package memocache

import (
	"context"
	"sync"
)

// SyncCache is a Cache that is safe for concurrent use.
//
// Concurrent misses for the same key share one generator call, so the
// generator runs at most once per key between erasures. Flights are matched
// by key equality (==), the same rule the map uses. Erase and Clear revoke
// flights that are still running: their callers get the result, but it is not
// stored.
type SyncCache[K comparable, V any] struct {
	mu      sync.Mutex
	gen     Generator[K, V]
	entries map[K]V
	// flights holds the running generation allowed to store each key.
	flights map[K]*flight[V]

	log   Logger
	hooks Hooks
}

// flight is one generator call. val and err are written before done is closed.
type flight[V any] struct {
	done chan struct{}
	val  V
	err  error
}

func newSyncCache[K comparable, V any](opts SyncOptions[K, V]) *SyncCache[K, V] {
	return &SyncCache[K, V]{
		gen:     opts.Generator,
		entries: make(map[K]V),
		flights: make(map[K]*flight[V]),
		log:     coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:   coalesce[Hooks](opts.Hooks, NopHooks{}),
	}
}

// SetGenerator binds gen for flights that start after the call.
// Cached entries and running flights are left alone.
func (c *SyncCache[K, V]) SetGenerator(gen Generator[K, V]) {
	c.mu.Lock()
	c.gen = gen
	c.mu.Unlock()
}

// Lookup returns the value stored for key, running the generator on a miss.
//
// If ctx is done before the value is ready, Lookup returns ctx.Err(). The
// flight keeps running for the other callers and still stores its result.
// A generator error is returned unchanged and nothing is stored.
//
// A key that is not equal to itself (a NaN float, or a struct holding one)
// can never hit, so its value is generated on every call and never stored.
func (c *SyncCache[K, V]) Lookup(ctx context.Context, key K) (V, error) {
	var zero V

	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return v, nil
	}
	gen := c.gen
	if gen == nil {
		c.mu.Unlock()
		return zero, ErrUnboundGenerator
	}
	if err := ctx.Err(); err != nil {
		c.mu.Unlock()
		return zero, err
	}

	f, joined := c.flights[key]
	if !joined {
		f = &flight[V]{done: make(chan struct{})}
		if selfEqual(key) {
			c.flights[key] = f
		}
	}
	c.mu.Unlock()

	if joined {
		c.hooks.Coalesced(key)
		c.log.Debug("joined in-flight generation", Fields{"key": key})
	} else {
		go c.run(gen, key, f)
	}

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-f.done:
		if f.err != nil {
			return zero, f.err
		}
		return f.val, nil
	}
}

// run executes one flight and stores its result if the flight still owns key.
// Waiters are released after the hooks have seen the outcome.
func (c *SyncCache[K, V]) run(gen Generator[K, V], key K, f *flight[V]) {
	c.hooks.Miss(key)
	c.log.Debug("cache miss, generating", Fields{"key": key})
	v, err := c.generate(gen, key)

	c.mu.Lock()
	owned := c.flights[key] == f
	if owned {
		delete(c.flights, key)
		if err == nil {
			c.entries[key] = v
		}
	}
	c.mu.Unlock()

	switch {
	case err != nil:
		c.hooks.GeneratorFailed(key, err)
		c.log.Warn("generator failed (not cached)", Fields{"key": key, "err": err})
	case !owned && selfEqual(key):
		c.hooks.StaleDiscarded(key)
		c.log.Debug("flight revoked by erase/clear, result not stored", Fields{"key": key})
	}

	f.val, f.err = v, err
	close(f.done)
}

func (c *SyncCache[K, V]) generate(gen Generator[K, V], key K) (v V, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Key: key, Value: r}
			c.log.Error("generator panicked", Fields{"key": key, "panic": r})
		}
	}()
	return gen(key)
}

// Contains reports whether key has a stored value. It never runs the generator.
func (c *SyncCache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	_, ok := c.entries[key]
	c.mu.Unlock()
	return ok
}

// Len returns the number of stored entries.
func (c *SyncCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Erase removes the entry for key and revokes a running flight for it, so the
// next miss starts a new one. Absent keys are a no-op.
func (c *SyncCache[K, V]) Erase(key K) {
	c.mu.Lock()
	_, had := c.entries[key]
	delete(c.entries, key)
	delete(c.flights, key)
	c.mu.Unlock()

	if had {
		c.hooks.Erased(key)
		c.log.Debug("erased key", Fields{"key": key})
	}
}

// Clear removes every entry and revokes all running flights.
// The generator stays bound.
func (c *SyncCache[K, V]) Clear() {
	c.mu.Lock()
	n := len(c.entries)
	clear(c.entries)
	clear(c.flights)
	c.mu.Unlock()

	c.hooks.Cleared(n)
	c.log.Debug("cleared cache", Fields{"removed": n})
}

// Close drops all entries and releases the generator.
func (c *SyncCache[K, V]) Close() error {
	c.Clear()
	c.SetGenerator(nil)
	return nil
}
