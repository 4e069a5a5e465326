package memocache

// Generator computes the value for a key that is not cached yet.
// It should be a deterministic function of its argument; memoization is only
// correct under that assumption.
type Generator[K comparable, V any] func(key K) (V, error)

// Options tune a Cache. All fields are optional.
type Options[K comparable, V any] struct {
	Generator Generator[K, V] // nil => bind later with SetGenerator
	Logger    Logger          // nil => NopLogger
	Hooks     Hooks           // nil => NopHooks
}

// SyncOptions tune a SyncCache. All fields are optional.
type SyncOptions[K comparable, V any] struct {
	Generator Generator[K, V]
	Logger    Logger
	Hooks     Hooks
}

// New returns an empty Cache with no generator bound.
// Lookup fails with ErrUnboundGenerator until SetGenerator is called.
func New[K comparable, V any]() *Cache[K, V] {
	return newCache(Options[K, V]{})
}

// NewWithGenerator returns an empty Cache bound to gen.
func NewWithGenerator[K comparable, V any](gen Generator[K, V]) *Cache[K, V] {
	return newCache(Options[K, V]{Generator: gen})
}

func NewWithOptions[K comparable, V any](opts Options[K, V]) *Cache[K, V] {
	return newCache(opts)
}

// NewSync returns an empty SyncCache.
func NewSync[K comparable, V any](opts SyncOptions[K, V]) *SyncCache[K, V] {
	return newSyncCache(opts)
}
