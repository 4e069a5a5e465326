package memocache

// Hooks lightweight callbacks for cache events.
// Implementations MUST be cheap and non-blocking.
// The cache calls them on hot paths, SyncCache calls them without holding its lock.
type Hooks interface {
	// The generator is about to run for key.
	Miss(key any)

	// The generator returned an error (or panicked) for key. Nothing was stored.
	GeneratorFailed(key any, err error)

	// A SyncCache caller joined a flight that another caller started.
	Coalesced(key any)

	// A SyncCache flight finished after its key was erased or cleared;
	// its result went to the waiting callers but was not stored.
	StaleDiscarded(key any)

	// Erase removed key. Not called when the key was absent.
	Erased(key any)

	// Clear (or Close) dropped n entries.
	Cleared(n int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Miss(any)                   {}
func (NopHooks) GeneratorFailed(any, error) {}
func (NopHooks) Coalesced(any)              {}
func (NopHooks) StaleDiscarded(any)         {}
func (NopHooks) Erased(any)                 {}
func (NopHooks) Cleared(int)                {}
