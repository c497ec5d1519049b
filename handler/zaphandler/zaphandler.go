// Package zaphandler forwards nlog records into a zap.Logger, letting a
// process that already runs zap collect output from registry loggers.
package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlog/core"
)

// Handler writes each record to the wrapped zap core.
type Handler struct {
	core zapcore.Core
}

// New creates a handler writing to l's core. The record's own timestamp
// is kept; l's caller and stack options do not apply.
func New(l *zap.Logger) *Handler {
	return &Handler{core: l.Core()}
}

// Handle implements handler.Handler.
func (h *Handler) Handle(rec *core.Record) error {
	lvl := Level(rec.Level())
	if !h.core.Enabled(lvl) {
		return nil
	}

	var fields []zapcore.Field
	if err := rec.Err(); err != nil {
		fields = []zapcore.Field{zap.Error(err)}
	}
	// Write through the core so failures are returned to the chain
	// instead of going to the logger's ErrorOutput.
	return h.core.Write(zapcore.Entry{
		Level:      lvl,
		Time:       rec.Time(),
		LoggerName: rec.Logger(),
		Message:    rec.Message(),
	}, fields)
}

// ConcurrentSafe implements handler.Handler. zap cores are safe for
// concurrent use.
func (h *Handler) ConcurrentSafe() bool {
	return true
}

// Level maps a record level to the matching zap level.
func Level(l core.Level) zapcore.Level {
	switch l {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
