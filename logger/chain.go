package logger

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlog/core"
	"github.com/philipp01105/nlog/handler"
)

// Chain is the ordered set of handlers every accepted record is passed to.
//
// The active sequence is an immutable slice published through an atomic
// pointer. Dispatch loads it once and never locks; Add and Remove copy
// the slice under mu and publish the copy, so in-flight dispatches keep
// iterating the snapshot they captured.
type Chain struct {
	mu       sync.Mutex
	handlers atomic.Pointer[[]handler.Handler]
	errOut   zapcore.WriteSyncer
	metrics  *metrics
}

func newChain(errOut zapcore.WriteSyncer, m *metrics) *Chain {
	c := &Chain{errOut: errOut, metrics: m}
	c.handlers.Store(&[]handler.Handler{})
	return c
}

// Dispatch passes rec to every handler in registration order. A handler
// that returns an error or panics does not stop the loop; failures are
// reported on the diagnostic channel once per record.
func (c *Chain) Dispatch(rec *core.Record) {
	hs := *c.handlers.Load()

	var merr *multierror.Error
	for i, h := range hs {
		if err := safeHandle(h, rec); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("handler %d (%T): %w", i, h, err))
		}
	}

	c.metrics.dispatched(rec.Level())
	if merr != nil {
		c.metrics.failed(len(merr.Errors))
		merr.ErrorFormat = joinErrors
		c.report("dispatch %s for %s: %v", rec.Level(), rec.Logger(), merr)
	}
}

// safeHandle converts a handler panic into an error.
func safeHandle(h handler.Handler, rec *core.Record) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h.Handle(rec)
}

func joinErrors(es []error) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// report writes one line to the diagnostic channel.
func (c *Chain) report(format string, args ...interface{}) {
	if c.errOut == nil {
		return
	}
	fmt.Fprintf(c.errOut, "%s nlog: %s\n", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...))
	_ = c.errOut.Sync()
}

// Add appends h to the chain. Handlers must be non-nil, report
// ConcurrentSafe and be comparable, including any interface values they
// hold, so that Remove can find them again.
func (c *Chain) Add(h handler.Handler) error {
	if h == nil {
		return fmt.Errorf("%w: nil handler", core.ErrInvalidArgument)
	}
	if !h.ConcurrentSafe() {
		return fmt.Errorf("%w: %T is not safe for concurrent use", core.ErrNotShareable, h)
	}
	if !reflect.TypeOf(h).Comparable() || !sameHandler(h, h) {
		return fmt.Errorf("%w: %T is not comparable", core.ErrNotShareable, h)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	old := *c.handlers.Load()
	next := make([]handler.Handler, len(old), len(old)+1)
	copy(next, old)
	next = append(next, h)
	c.handlers.Store(&next)
	return nil
}

// Remove drops the first occurrence of h. Removing a handler that is not
// registered is a no-op.
func (c *Chain) Remove(h handler.Handler) {
	if h == nil || !reflect.TypeOf(h).Comparable() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	old := *c.handlers.Load()
	for i, x := range old {
		if !sameHandler(x, h) {
			continue
		}
		next := make([]handler.Handler, 0, len(old)-1)
		next = append(next, old[:i]...)
		next = append(next, old[i+1:]...)
		c.handlers.Store(&next)
		return
	}
}

// sameHandler compares two handlers. A comparable struct can still hold
// an interface whose dynamic value is not comparable; such a comparison
// panics and counts as not equal.
func sameHandler(a, b handler.Handler) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// Handlers returns a copy of the current sequence.
func (c *Chain) Handlers() []handler.Handler {
	hs := *c.handlers.Load()
	out := make([]handler.Handler, len(hs))
	copy(out, hs)
	return out
}

// Len returns the number of registered handlers.
func (c *Chain) Len() int {
	return len(*c.handlers.Load())
}
