package logger

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"

	"github.com/philipp01105/nlog/core"
	"github.com/philipp01105/nlog/handler"
)

// recorder is a handler that keeps every record it receives.
type recorder struct {
	mu   sync.Mutex
	recs []*core.Record
}

func (r *recorder) Handle(rec *core.Record) error {
	r.mu.Lock()
	r.recs = append(r.recs, rec)
	r.mu.Unlock()
	return nil
}

func (r *recorder) ConcurrentSafe() bool { return true }

func (r *recorder) records() []*core.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*core.Record(nil), r.recs...)
}

func (r *recorder) messages() []string {
	var out []string
	for _, rec := range r.records() {
		out = append(out, rec.Message())
	}
	return out
}

var fixedTime = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

// newTestRegistry builds a registry with the given handlers, a fixed
// clock and a captured diagnostic channel.
func newTestRegistry(t *testing.T, hs []handler.Handler, opts ...Option) (*Registry, *zaptest.Buffer) {
	t.Helper()
	diag := &zaptest.Buffer{}
	opts = append([]Option{
		WithHandlers(hs...),
		WithErrorOutput(zapcore.Lock(diag)),
		WithClock(func() time.Time { return fixedTime }),
	}, opts...)
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r, diag
}
