package logger

import (
	"fmt"
	"sync/atomic"

	"github.com/philipp01105/nlog/core"
)

// Logger is a named emitter bound to a Registry. The name never changes;
// the threshold may be changed at any time and is read without locking.
type Logger struct {
	name  string
	level atomic.Int32
	reg   *Registry
}

func newLogger(name string, level core.Level, reg *Registry) *Logger {
	l := &Logger{name: name, reg: reg}
	l.level.Store(int32(level))
	return l
}

// Name returns the registered name.
func (l *Logger) Name() string {
	return l.name
}

// String implements fmt.Stringer.
func (l *Logger) String() string {
	return l.name
}

// Level returns the current threshold.
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// SetLevel changes the threshold. It fails with core.ErrInvalidArgument
// for a level outside the severity scale.
func (l *Logger) SetLevel(level core.Level) error {
	if !level.Valid() {
		return fmt.Errorf("%w: level %d", core.ErrInvalidArgument, level)
	}
	l.level.Store(int32(level))
	return nil
}

// Enabled reports whether a record at level would be accepted.
func (l *Logger) Enabled(level core.Level) bool {
	return level.Enabled(l.Level())
}

// IsDebug reports whether DEBUG records are accepted.
func (l *Logger) IsDebug() bool { return l.Enabled(core.DebugLevel) }

// IsInfo reports whether INFO records are accepted.
func (l *Logger) IsInfo() bool { return l.Enabled(core.InfoLevel) }

// IsWarn reports whether WARN records are accepted.
func (l *Logger) IsWarn() bool { return l.Enabled(core.WarnLevel) }

// IsError reports whether ERROR records are accepted.
func (l *Logger) IsError() bool { return l.Enabled(core.ErrorLevel) }

// Log emits a record at level with an optional failure payload.
func (l *Logger) Log(level core.Level, msg string, err error) {
	// Level check optimization - exit early BEFORE any allocations
	if !emittable(level) || !l.Enabled(level) {
		return
	}
	l.log(level, msg, err)
}

// emittable reports whether records may carry level. SilentLevel is a
// threshold only.
func emittable(level core.Level) bool {
	return level >= core.DebugLevel && level < core.SilentLevel
}

// Emit dispatches a prebuilt record if the logger accepts its level. A
// record carrying another logger's name is re-issued under this logger's
// name, since handlers attribute records by Logger().
func (l *Logger) Emit(rec *core.Record) {
	if rec == nil || !emittable(rec.Level()) || !l.Enabled(rec.Level()) {
		return
	}
	if rec.Logger() != l.name {
		rec = core.NewRecord(rec.Time(), rec.Level(), l.name, rec.Message(), rec.Err())
	}
	l.reg.chain.Dispatch(rec)
}

func (l *Logger) log(level core.Level, msg string, err error) {
	l.reg.chain.Dispatch(core.NewRecord(l.reg.clock(), level, l.name, msg, err))
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, msg, nil)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, msg, nil)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, msg, nil)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, msg, nil)
}

// DebugErr logs a debug message with a failure payload
func (l *Logger) DebugErr(msg string, err error) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, msg, err)
}

// InfoErr logs an info message with a failure payload
func (l *Logger) InfoErr(msg string, err error) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, msg, err)
}

// WarnErr logs a warning message with a failure payload
func (l *Logger) WarnErr(msg string, err error) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, msg, err)
}

// ErrorErr logs an error message with a failure payload
func (l *Logger) ErrorErr(msg string, err error) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, msg, err)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}
