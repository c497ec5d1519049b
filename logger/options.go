package logger

import (
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlog/core"
	"github.com/philipp01105/nlog/handler"
)

// Options specifies parameters that affect registry behavior.
type Options struct {
	levels       map[string]core.Level
	defaultLevel core.Level
	handlers     []handler.Handler
	handlersSet  bool
	errOut       zapcore.WriteSyncer
	clock        core.Clock
}

// Option represent Options parameters modifier.
type Option func(*Options)

// WithLevels seeds the initial threshold of loggers created later, keyed
// by exact logger name. Invalid levels are ignored.
func WithLevels(levels map[string]core.Level) Option {
	return func(opts *Options) {
		for name, l := range levels {
			if l.Valid() {
				opts.levels[name] = l
			}
		}
	}
}

// WithDefaultLevel sets the threshold of loggers without an override.
func WithDefaultLevel(l core.Level) Option {
	return func(opts *Options) { opts.defaultLevel = l }
}

// WithHandlers replaces the default console handler with the given
// handlers, in order. Passing none starts the registry with an empty chain.
func WithHandlers(hs ...handler.Handler) Option {
	return func(opts *Options) {
		opts.handlers = append([]handler.Handler(nil), hs...)
		opts.handlersSet = true
	}
}

// WithErrorOutput sets the diagnostic channel for handler failures.
// The sink should be safe for concurrent use; wrap it with zapcore.Lock
// if it is not.
func WithErrorOutput(w zapcore.WriteSyncer) Option {
	return func(opts *Options) { opts.errOut = w }
}

// WithClock sets the clock used to timestamp records.
func WithClock(c core.Clock) Option {
	return func(opts *Options) { opts.clock = c }
}

// WithCoarseClock timestamps records from the process-wide coarse clock,
// trading sub-millisecond precision for a cheaper hot path.
func WithCoarseClock() Option {
	return WithClock(core.CoarseClock())
}

func defaultOptions() *Options {
	return &Options{
		levels:       make(map[string]core.Level),
		defaultLevel: core.DefaultLevel,
		errOut:       zapcore.Lock(os.Stderr),
	}
}
