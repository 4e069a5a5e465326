// Package memocache memoizes a generator function: the first lookup of a key
// computes its value through the bound generator, later lookups return the
// stored value without calling the generator again.
//
// Two flavors:
//   - Cache: plain map, no locking. Use from one goroutine or guard it yourself.
//   - SyncCache: safe for concurrent use. Concurrent misses for the same key are
//     coalesced so the generator runs at most once per key.
//
// Failures are never cached. If the generator returns an error, the error is
// handed back to the caller as is and the next lookup for that key retries.
//
// There is no eviction. Entries stay until Erase, Clear or Close.
//
//	sq := memocache.NewWithGenerator(func(x int) (int, error) { return x * x, nil })
//	v, _ := sq.Lookup(4) // calls the generator
//	v, _ = sq.Lookup(4)  // served from memory
//	sq.Erase(4)          // next Lookup(4) recomputes
package memocache
