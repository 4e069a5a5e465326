package zap

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/memocache"
)

func TestMissIsLoggedAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := memocache.NewWithOptions(memocache.Options[int, int]{
		Generator: func(x int) (int, error) { return x * x, nil },
		Logger:    ZapLogger{L: zap.New(core)},
	})

	if _, err := c.Lookup(4); err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, err := c.Lookup(4); err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	misses := logs.FilterMessage("cache miss, generating").All()
	if len(misses) != 1 {
		t.Fatalf("miss logs=%d want 1", len(misses))
	}
	if got := misses[0].ContextMap()["key"]; got != int64(4) {
		t.Fatalf("key field=%v (%T) want 4", got, got)
	}
}

func TestFieldsAreSortedAndErrorsNamed(t *testing.T) {
	fs := zf(memocache.Fields{"key": 1, "err": errors.New("boom"), "attempt": 2})
	if len(fs) != 3 {
		t.Fatalf("fields=%d want 3", len(fs))
	}
	if fs[0].Key != "attempt" || fs[1].Key != "err" || fs[2].Key != "key" {
		t.Fatalf("order=%s,%s,%s", fs[0].Key, fs[1].Key, fs[2].Key)
	}
	if fs[1].Type != zapcore.ErrorType {
		t.Fatalf("err field type=%v want ErrorType", fs[1].Type)
	}
}

func TestEmptyFields(t *testing.T) {
	if zf(nil) != nil {
		t.Fatalf("zf(nil) should be nil")
	}
	ZapLogger{}.Warn("dropped", memocache.Fields{"k": 1})
}
