package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/memocache"
	"github.com/unkn0wn-root/memocache/keyenc"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	MissEvery      uint64
	CoalescedEvery uint64
	// Optional key redactor. Defaults to a SHA-256 prefix of Keys' encoding.
	Redact func(any) string
	// Keys encodes a key before hashing. nil => deterministic CBOR.
	// Keys the encoder rejects are hashed from fmt.Sprint(key).
	Keys keyenc.Encoder[any]
}

// Hooks logs cache events through a *slog.Logger.
type Hooks struct {
	l    *slog.Logger
	opts Options

	missCtr      atomic.Uint64
	coalescedCtr atomic.Uint64
}

var _ memocache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	if opts.Keys == nil {
		if cb, err := keyenc.NewCBOR[any](); err == nil {
			opts.Keys = cb
		}
	}
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k any) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	var raw string
	if h.opts.Keys != nil {
		raw, _ = h.opts.Keys.Key(k)
	}
	if raw == "" {
		raw = fmt.Sprint(k)
	}
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Miss(key any) {
	if h.l == nil || !sample(h.opts.MissEvery, &h.missCtr) {
		return
	}
	h.l.Debug("memocache.miss",
		"key", h.redact(key))
}

func (h *Hooks) Coalesced(key any) {
	if h.l == nil || !sample(h.opts.CoalescedEvery, &h.coalescedCtr) {
		return
	}
	h.l.Debug("memocache.coalesced",
		"key", h.redact(key))
}

func (h *Hooks) GeneratorFailed(key any, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("memocache.generator_failed",
		"key", h.redact(key),
		"err", err)
}

func (h *Hooks) StaleDiscarded(key any) {
	if h.l == nil {
		return
	}
	h.l.Info("memocache.stale_discarded",
		"key", h.redact(key))
}

func (h *Hooks) Erased(key any) {
	if h.l == nil {
		return
	}
	h.l.Debug("memocache.erased",
		"key", h.redact(key))
}

func (h *Hooks) Cleared(n int) {
	if h.l == nil {
		return
	}
	h.l.Info("memocache.cleared",
		"removed", n)
}
