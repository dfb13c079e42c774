package siimg

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/zype-z/siimg/fetch"
	"github.com/zype-z/siimg/text"
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
// SetLogger can be called concurrently with rendering from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for siimg and its sub-packages
// (text, fetch). By default siimg produces no log output.
//
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by siimg:
//   - [slog.LevelDebug]: glyph cache statistics, fetches, preset dispatch
//   - [slog.LevelWarn]: recovered input problems (bad color, invalid resize)
//
// Example:
//
//	siimg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	text.SetLogger(l)
	fetch.SetLogger(l)
}

// Logger returns the current logger used by siimg.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
