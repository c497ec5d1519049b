package logger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlog/config"
	"github.com/philipp01105/nlog/handler"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process registry, creating it on first use. Its
// thresholds come from config.DefaultPath and its chain starts with the
// console handler.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = newDefault(afero.NewOsFs(), config.DefaultPath(), zapcore.Lock(os.Stderr))
	})
	return defaultRegistry
}

// newDefault loads the levels file and builds a registry. Load failures
// are reported on errOut and never abort.
func newDefault(fsys afero.Fs, path string, errOut zapcore.WriteSyncer, opts ...Option) *Registry {
	levels, err := config.Load(fsys, path)
	for _, e := range multierr.Errors(err) {
		fmt.Fprintf(errOut, "%s nlog: %v\n", time.Now().Format(time.RFC3339), e)
	}
	_ = errOut.Sync()

	opts = append([]Option{
		WithLevels(levels.Map()),
		WithErrorOutput(errOut),
		WithHandlers(handler.NewConsoleHandler()),
	}, opts...)
	r, err := New(opts...)
	if err != nil {
		// The console handler always registers; anything else is a bug.
		panic(err)
	}
	return r
}

// Package-level convenience functions using the default registry

// Get returns the named logger of the default registry, creating it on first use.
func Get(name string) (*Logger, error) {
	return Default().Get(name)
}

// MustGet is like Get but panics on an invalid name.
func MustGet(name string) *Logger {
	return Default().MustGet(name)
}

// Create registers a new logger in the default registry.
func Create(name string) (*Logger, error) {
	return Default().Create(name)
}

// Find looks up a logger of the default registry.
func Find(name string, strict bool) (*Logger, error) {
	return Default().Find(name, strict)
}

// List returns all loggers of the default registry.
func List() []*Logger {
	return Default().List()
}

// AddHandler appends h to the default registry's chain.
func AddHandler(h handler.Handler) error {
	return Default().AddHandler(h)
}

// RemoveHandler removes h from the default registry's chain.
func RemoveHandler(h handler.Handler) {
	Default().RemoveHandler(h)
}

// Handlers returns a snapshot of the default registry's chain.
func Handlers() []handler.Handler {
	return Default().Handlers()
}
