// Package trace provides lightweight scoped timing spans around store
// lookups. Spans are reported through a process-wide slog logger; the
// default sink discards everything, so instrumentation is free unless a
// caller opts in via SetLogger.
package trace

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

// discardHandler stands in for slog.DiscardHandler, which requires Go 1.24.
var discardHandler = slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)})

var (
	mu     sync.RWMutex
	logger = slog.New(discardHandler)
)

// SetLogger replaces the span sink. Passing nil restores the discarding
// default.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		logger = slog.New(discardHandler)
		return
	}
	logger = l
}

// Scope opens a timing span. The returned func closes it and logs the
// elapsed duration at debug level:
//
//	defer trace.Scope("settings.get_config_string", "key", key)()
//
// Spans carry no return value and never affect the instrumented call.
func Scope(name string, args ...any) func() {
	start := time.Now()
	return func() {
		mu.RLock()
		l := logger
		mu.RUnlock()

		l.Debug(name, append([]any{slog.Duration("elapsed", time.Since(start))}, args...)...)
	}
}
