package core

import (
	"strings"
	"time"
)

// Record is a single accepted log event. It is immutable once built.
type Record struct {
	time    time.Time
	level   Level
	logger  string
	message string
	err     error
}

// NewRecord builds a record.
func NewRecord(t time.Time, level Level, logger, message string, err error) *Record {
	return &Record{
		time:    t,
		level:   level,
		logger:  logger,
		message: message,
		err:     err,
	}
}

// Time returns the emission timestamp.
func (r *Record) Time() time.Time { return r.time }

// Level returns the severity of the record.
func (r *Record) Level() Level { return r.level }

// Logger returns the name of the emitting logger.
func (r *Record) Logger() string { return r.logger }

// Message returns the message text.
func (r *Record) Message() string { return r.message }

// Err returns the failure payload, or nil.
func (r *Record) Err() error { return r.err }

// String renders the record on a single line without a timestamp.
func (r *Record) String() string {
	var b strings.Builder
	b.Grow(len(r.logger) + len(r.message) + 16)
	b.WriteByte('[')
	b.WriteString(r.level.String())
	b.WriteString("] [")
	b.WriteString(r.logger)
	b.WriteString("] ")
	b.WriteString(r.message)
	if r.err != nil {
		b.WriteString(" error=")
		b.WriteString(r.err.Error())
	}
	return b.String()
}
