package brief

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

// liveBackends holds backends owned by open extractors so that SetLogger
// reaches them.
var (
	liveMu       sync.Mutex
	liveBackends = make(map[Backend]struct{})
)

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for brief and its backends.
// By default, brief produces no log output.
//
// Log levels used by brief:
//   - [slog.LevelDebug]: per-call statistics (keypoints kept, backend used)
//   - [slog.LevelInfo]: backend lifecycle (GPU adapter selected)
//   - [slog.LevelWarn]: CPU fallback, resource release errors
//
// Pass nil to restore the silent default.
//
// Example:
//
//	brief.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	liveMu.Lock()
	defer liveMu.Unlock()
	for b := range liveBackends {
		propagateLogger(b, l)
	}
}

// Logger returns the current logger used by brief.
// It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by backends that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger passes the logger to a backend if it implements loggerSetter.
func propagateLogger(b Backend, l *slog.Logger) {
	if ls, ok := b.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}

func trackBackend(b Backend) {
	liveMu.Lock()
	liveBackends[b] = struct{}{}
	liveMu.Unlock()
	propagateLogger(b, Logger())
}

func untrackBackend(b Backend) {
	liveMu.Lock()
	delete(liveBackends, b)
	liveMu.Unlock()
}
