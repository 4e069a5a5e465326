package memocache

import (
	"maps"
	"slices"
)

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Logger is the leveled logger the caches write to. Adapters for logrus, zap
// and log/slog live under log/. A nil Logger in Options disables logging.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

// Sorted returns the field names in ascending order, so adapters emit
// fields in a stable order.
func (f Fields) Sorted() []string {
	return slices.Sorted(maps.Keys(f))
}
