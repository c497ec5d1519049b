package handler

import (
	"github.com/philipp01105/nlog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes an accepted log record. A returned error is
	// reported on the registry's diagnostic channel and never reaches
	// the emitting caller.
	Handle(rec *core.Record) error

	// ConcurrentSafe reports whether Handle may be called from many
	// goroutines at once. Handlers reporting false are rejected at
	// registration time.
	ConcurrentSafe() bool
}

// funcHandler adapts a plain function to Handler. It is always used
// through a pointer so that handler identity is comparable.
type funcHandler struct {
	fn func(rec *core.Record) error
}

// Func returns a Handler that calls fn for every record. The function
// must be safe for concurrent use. Each call to Func returns a distinct
// handler, so keep the result to remove it later.
func Func(fn func(rec *core.Record) error) Handler {
	return &funcHandler{fn: fn}
}

func (h *funcHandler) Handle(rec *core.Record) error {
	return h.fn(rec)
}

func (h *funcHandler) ConcurrentSafe() bool {
	return h.fn != nil
}
