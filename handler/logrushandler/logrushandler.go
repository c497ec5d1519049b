// Package logrushandler forwards nlog records into a logrus.Logger.
package logrushandler

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/nlog/core"
)

// LoggerKey is the logrus field holding the emitting logger's name.
const LoggerKey = "logger"

// Handler writes each record as a logrus entry.
type Handler struct {
	logger *logrus.Logger
}

// New creates a handler writing to l. l's level still filters.
func New(l *logrus.Logger) *Handler {
	return &Handler{logger: l}
}

// Handle implements handler.Handler.
func (h *Handler) Handle(rec *core.Record) error {
	lvl := Level(rec.Level())
	if !h.logger.IsLevelEnabled(lvl) {
		return nil
	}

	entry := logrus.NewEntry(h.logger).
		WithTime(rec.Time()).
		WithField(LoggerKey, rec.Logger())
	if err := rec.Err(); err != nil {
		entry = entry.WithError(err)
	}
	entry.Log(lvl, rec.Message())
	return nil
}

// ConcurrentSafe implements handler.Handler. logrus serializes writes
// with its own mutex.
func (h *Handler) ConcurrentSafe() bool {
	return true
}

// Level maps a record level to the matching logrus level.
func Level(l core.Level) logrus.Level {
	switch l {
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
