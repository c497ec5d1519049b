package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/nlog/core"
)

// LoggerKey is the attribute holding the emitting logger's name.
const LoggerKey = "logger"

// ErrorKey is the attribute holding a record's failure payload.
const ErrorKey = "error"

// Handler forwards records into a slog.Handler.
type Handler struct {
	next slog.Handler
}

// New creates a handler forwarding to next. next must be safe for
// concurrent use, as every slog.Handler is required to be.
func New(next slog.Handler) *Handler {
	return &Handler{next: next}
}

// Handle implements handler.Handler.
func (h *Handler) Handle(rec *core.Record) error {
	ctx := context.Background()
	lvl := Level(rec.Level())
	if !h.next.Enabled(ctx, lvl) {
		return nil
	}

	r := slog.NewRecord(rec.Time(), lvl, rec.Message(), 0)
	r.AddAttrs(slog.String(LoggerKey, rec.Logger()))
	if err := rec.Err(); err != nil {
		r.AddAttrs(slog.Any(ErrorKey, err))
	}
	return h.next.Handle(ctx, r)
}

// ConcurrentSafe implements handler.Handler.
func (h *Handler) ConcurrentSafe() bool {
	return h.next != nil
}

// Level maps a record level to the matching slog level.
func Level(l core.Level) slog.Level {
	switch l {
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// FromSlog maps a slog level to the nearest record level.
func FromSlog(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
