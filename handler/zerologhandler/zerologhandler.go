// Package zerologhandler forwards nlog records into a zerolog.Logger.
package zerologhandler

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/nlog/core"
)

// LoggerKey is the zerolog field holding the emitting logger's name.
const LoggerKey = "logger"

// Handler writes each record as a zerolog event.
type Handler struct {
	logger zerolog.Logger
}

// New creates a handler writing to l. The record timestamp is written
// under zerolog.TimestampFieldName.
func New(l zerolog.Logger) *Handler {
	return &Handler{logger: l}
}

// Handle implements handler.Handler.
func (h *Handler) Handle(rec *core.Record) error {
	ev := h.logger.WithLevel(Level(rec.Level()))
	if ev == nil {
		return nil
	}
	ev = ev.Time(zerolog.TimestampFieldName, rec.Time()).
		Str(LoggerKey, rec.Logger())
	if err := rec.Err(); err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(rec.Message())
	return nil
}

// ConcurrentSafe implements handler.Handler. Events are written with a
// single Write call; the output writer must tolerate concurrent writes,
// as zerolog itself requires.
func (h *Handler) ConcurrentSafe() bool {
	return true
}

// Level maps a record level to the matching zerolog level.
func Level(l core.Level) zerolog.Level {
	switch l {
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
