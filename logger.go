package clippath

import (
	"log/slog"
	"sync/atomic"
)

// silent drops every record; its handler reports every level disabled, so
// log calls on it cost no formatting.
var silent = slog.New(slog.DiscardHandler)

// current holds the logger shared by the package and its sub-packages.
var current = func() *atomic.Pointer[slog.Logger] {
	var p atomic.Pointer[slog.Logger]
	p.Store(silent)
	return &p
}()

// SetLogger installs l for clippath and its sub-packages (canvas, script,
// live). Output is off until it is called; nil turns it off again.
// It may be called while other goroutines are logging.
//
// Levels:
//   - [slog.LevelDebug]: commits, removals, drags and mode switches
//   - [slog.LevelInfo]: live server connections, CLI progress
//   - [slog.LevelWarn]: rejected resizes, clamped canvas sizes, failed
//     strokes and dropped connections
//
// Example:
//
//	clippath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
