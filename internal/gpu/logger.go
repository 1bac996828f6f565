//go:build !nogpu

package gpu

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. It backs the logger until brief.SetLogger
// hands one over.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var evalLogger atomic.Pointer[slog.Logger]

func init() { evalLogger.Store(slog.New(discard{})) }

// logger is used by every evaluator, so adapter selection and dispatch
// failures land in the host application's log.
func logger() *slog.Logger { return evalLogger.Load() }

// useLogger installs l; nil restores the discarding logger.
func useLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	evalLogger.Store(l)
}
