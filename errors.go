package memocache

import (
	"errors"
	"fmt"
)

var (
	// ErrUnboundGenerator is returned by Lookup when no generator is bound.
	ErrUnboundGenerator = errors.New("memocache: generator not bound")

	// ErrGeneratorPanic is matched by the *PanicError a SyncCache returns
	// when the generator panics.
	ErrGeneratorPanic = errors.New("memocache: generator panicked")
)

// PanicError carries the value a generator panicked with.
// Nothing is stored for the key; the next lookup runs the generator again.
type PanicError struct {
	Key   any
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("memocache: generator panicked for key %v: %v", e.Key, e.Value)
}

func (e *PanicError) Unwrap() error { return ErrGeneratorPanic }
