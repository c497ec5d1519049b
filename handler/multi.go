package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/nlog/core"
)

// MultiHandler sends each record to a fixed group of handlers. The group
// is registered and removed as a single chain element.
type MultiHandler struct {
	handlers []Handler
	safe     bool
}

// Multi creates a new multi-handler; nil children are skipped
func Multi(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{
		handlers: make([]Handler, 0, len(handlers)),
		safe:     true,
	}
	for _, h := range handlers {
		if h == nil {
			continue
		}
		m.handlers = append(m.handlers, h)
		if !h.ConcurrentSafe() {
			m.safe = false
		}
	}
	return m
}

// Handle passes the record to every child, in order, even when an
// earlier child fails. Child errors are combined.
func (m *MultiHandler) Handle(rec *core.Record) error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Handle(rec))
	}
	return err
}

// ConcurrentSafe is true when every child is concurrent safe.
func (m *MultiHandler) ConcurrentSafe() bool {
	return m.safe
}

// Len returns the number of children.
func (m *MultiHandler) Len() int {
	return len(m.handlers)
}
