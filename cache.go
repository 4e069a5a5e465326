package memocache

// Cache memoizes a Generator in a plain map.
// It is not safe for concurrent use; see SyncCache.
type Cache[K comparable, V any] struct {
	gen     Generator[K, V]
	entries map[K]V
	log     Logger
	hooks   Hooks
}

func newCache[K comparable, V any](opts Options[K, V]) *Cache[K, V] {
	return &Cache[K, V]{
		gen:     opts.Generator,
		entries: make(map[K]V),
		log:     coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:   coalesce[Hooks](opts.Hooks, NopHooks{}),
	}
}

// SetGenerator binds gen for future misses. Cached entries are kept.
func (c *Cache[K, V]) SetGenerator(gen Generator[K, V]) {
	c.gen = gen
}

// Lookup returns the value stored for key, running the generator on a miss.
// A generator error is returned unchanged and nothing is stored. A key that is
// not equal to itself is generated on every call and never stored.
func (c *Cache[K, V]) Lookup(key K) (V, error) {
	if v, ok := c.entries[key]; ok {
		return v, nil
	}
	var zero V
	if c.gen == nil {
		return zero, ErrUnboundGenerator
	}

	c.hooks.Miss(key)
	c.log.Debug("cache miss, generating", Fields{"key": key})
	v, err := c.gen(key)
	if err != nil {
		c.hooks.GeneratorFailed(key, err)
		c.log.Warn("generator failed (not cached)", Fields{"key": key, "err": err})
		return zero, err
	}
	if selfEqual(key) {
		c.entries[key] = v
	}
	return v, nil
}

// selfEqual is false for keys that can never be found in a map again,
// such as a NaN float or a struct holding one.
func selfEqual[K comparable](k K) bool { return k == k }

// Contains reports whether key has a stored value. It never runs the generator.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.entries[key]
	return ok
}

// Len returns the number of stored entries.
func (c *Cache[K, V]) Len() int { return len(c.entries) }

// Erase removes the entry for key. Absent keys are a no-op.
func (c *Cache[K, V]) Erase(key K) {
	if _, ok := c.entries[key]; !ok {
		return
	}
	delete(c.entries, key)
	c.hooks.Erased(key)
	c.log.Debug("erased key", Fields{"key": key})
}

// Clear removes every entry. The generator stays bound.
func (c *Cache[K, V]) Clear() {
	n := len(c.entries)
	clear(c.entries)
	c.hooks.Cleared(n)
	c.log.Debug("cleared cache", Fields{"removed": n})
}

// Close drops all entries and releases the generator.
// The cache stays usable: bind a new generator to fill it again.
func (c *Cache[K, V]) Close() error {
	c.Clear()
	c.gen = nil
	return nil
}
