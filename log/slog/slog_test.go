package slog

import (
	"bytes"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/memocache"
)

func TestClearIsLogged(t *testing.T) {
	var buf bytes.Buffer
	l := stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))

	c := memocache.NewWithOptions(memocache.Options[string, string]{
		Generator: func(s string) (string, error) { return strings.ToUpper(s), nil },
		Logger:    Logger{L: l},
	})
	_, _ = c.Lookup("a")
	_, _ = c.Lookup("b")
	c.Clear()

	out := buf.String()
	if !strings.Contains(out, "cleared cache") || !strings.Contains(out, "removed=2") {
		t.Fatalf("unexpected log output:\n%s", out)
	}
}

func TestAttrsInKeyOrder(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: stdslog.New(stdslog.NewTextHandler(&buf, nil))}

	l.Warn("w", memocache.Fields{"c": 3, "a": 1, "b": 2})
	l.Debug("below level", nil)
	Logger{}.Error("dropped", nil)

	out := buf.String()
	if !strings.Contains(out, "a=1 b=2 c=3") {
		t.Fatalf("attrs not sorted:\n%s", out)
	}
	if strings.Contains(out, "below level") {
		t.Fatalf("debug logged at default level:\n%s", out)
	}
}
