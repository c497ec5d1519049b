package config

import (
	"sort"

	"github.com/philipp01105/nlog/core"
)

// Levels is the table of configured thresholds keyed by logger name.
type Levels struct {
	byName map[string]core.Level
}

// NewLevels creates an empty table.
func NewLevels() *Levels {
	return &Levels{byName: make(map[string]core.Level)}
}

// Get returns the configured threshold for name.
func (l *Levels) Get(name string) (core.Level, bool) {
	lvl, ok := l.byName[name]
	return lvl, ok
}

// Set records a threshold for name.
func (l *Levels) Set(name string, lvl core.Level) {
	l.byName[name] = lvl
}

// Len returns the number of entries.
func (l *Levels) Len() int {
	return len(l.byName)
}

// Names returns the configured logger names, sorted.
func (l *Levels) Names() []string {
	names := make([]string, 0, len(l.byName))
	for name := range l.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the table.
func (l *Levels) Map() map[string]core.Level {
	out := make(map[string]core.Level, len(l.byName))
	for k, v := range l.byName {
		out[k] = v
	}
	return out
}
