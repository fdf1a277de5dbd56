package tween

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// building attributes at all.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by this package. By default nothing
// is logged. Passing nil restores the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: solver fallbacks and segmentation cache fills
//   - [slog.LevelWarn]: inputs that were repaired, such as an invalid spring
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently used by this package.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// debugEnabled reports whether debug records would be emitted. Hot paths
// check it before constructing attributes.
func debugEnabled() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}
