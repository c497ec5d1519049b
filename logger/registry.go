package logger

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/nlog/core"
	"github.com/philipp01105/nlog/handler"
)

// Registry maps logger names to Loggers and owns the handler chain that
// every logger of the registry dispatches to.
type Registry struct {
	mu           sync.RWMutex
	byName       map[string]*Logger
	levels       map[string]core.Level
	defaultLevel core.Level
	clock        core.Clock
	chain        *Chain
	metrics      *metrics
}

// New creates a registry. Without WithHandlers the chain starts with the
// console handler.
func New(opts ...Option) (*Registry, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if !o.defaultLevel.Valid() {
		return nil, fmt.Errorf("%w: default level %d", core.ErrInvalidArgument, o.defaultLevel)
	}
	if o.clock == nil {
		o.clock = time.Now
	}

	m := newMetrics()
	r := &Registry{
		byName:       make(map[string]*Logger),
		levels:       o.levels,
		defaultLevel: o.defaultLevel,
		clock:        o.clock,
		chain:        newChain(o.errOut, m),
		metrics:      m,
	}

	hs := o.handlers
	if !o.handlersSet {
		hs = []handler.Handler{handler.NewConsoleHandler()}
	}
	for _, h := range hs {
		if err := r.chain.Add(h); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Create registers a new logger. It fails with core.ErrDuplicateName if
// the name is taken and core.ErrInvalidName if it breaks the naming rule.
func (r *Registry) Create(name string) (*Logger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.create(name)
}

// create must be called with mu held.
func (r *Registry) create(name string) (*Logger, error) {
	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("%w: %q", core.ErrDuplicateName, name)
	}
	if err := CheckName(name); err != nil {
		return nil, err
	}

	level := r.defaultLevel
	if l, ok := r.levels[name]; ok {
		level = l
	}
	l := newLogger(name, level, r)
	r.byName[name] = l
	return l, nil
}

// Get returns the logger registered under name, creating it on first use.
// It only fails when name breaks the naming rule.
func (r *Registry) Get(name string) (*Logger, error) {
	r.mu.RLock()
	l, ok := r.byName[name]
	r.mu.RUnlock()
	if ok {
		return l, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another goroutine may have won the race between the two locks.
	if l, ok := r.byName[name]; ok {
		return l, nil
	}
	return r.create(name)
}

// MustGet is like Get but panics on an invalid name. It is meant for
// package-level logger variables with constant names.
func (r *Registry) MustGet(name string) *Logger {
	l, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return l
}

// Find looks up a registered logger. A miss fails with
// core.ErrUnknownLogger when strict is set and returns nil, nil otherwise.
func (r *Registry) Find(name string, strict bool) (*Logger, error) {
	r.mu.RLock()
	l, ok := r.byName[name]
	r.mu.RUnlock()
	if ok {
		return l, nil
	}
	if strict {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownLogger, name)
	}
	return nil, nil
}

// List returns all registered loggers sorted by name. The slice is a
// fresh copy owned by the caller.
func (r *Registry) List() []*Logger {
	r.mu.RLock()
	out := make([]*Logger, 0, len(r.byName))
	for _, l := range r.byName {
		out = append(out, l)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// SetLevels applies thresholds to registered loggers and remembers them
// as overrides for loggers created later. Invalid levels are skipped.
func (r *Registry) SetLevels(levels map[string]core.Level) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, lvl := range levels {
		if !lvl.Valid() {
			continue
		}
		r.levels[name] = lvl
		if l, ok := r.byName[name]; ok {
			l.level.Store(int32(lvl))
		}
	}
}

// Levels returns the configured per-name overrides.
func (r *Registry) Levels() map[string]core.Level {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]core.Level, len(r.levels))
	for k, v := range r.levels {
		out[k] = v
	}
	return out
}

// Chain returns the registry's handler chain.
func (r *Registry) Chain() *Chain {
	return r.chain
}

// AddHandler appends h to the handler chain.
func (r *Registry) AddHandler(h handler.Handler) error {
	return r.chain.Add(h)
}

// RemoveHandler removes the first occurrence of h from the handler chain.
func (r *Registry) RemoveHandler(h handler.Handler) {
	r.chain.Remove(h)
}

// Handlers returns a snapshot of the handler chain.
func (r *Registry) Handlers() []handler.Handler {
	return r.chain.Handlers()
}

// Collectors returns the registry's prometheus collectors for registration
// by the host process.
func (r *Registry) Collectors() []prometheus.Collector {
	return r.metrics.collectors()
}
