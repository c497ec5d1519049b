package zaphandler

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/nlog/core"
)

func TestHandler_Forwards(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	h := New(zap.New(obs))
	ts := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	if err := h.Handle(core.NewRecord(ts, core.WarnLevel, "db", "slow query", errors.New("timeout"))); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	entries := logs.AllUntimed()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel || e.Message != "slow query" || e.LoggerName != "db" {
		t.Errorf("unexpected entry %+v", e.Entry)
	}
	if got := e.ContextMap()["error"]; got != "timeout" {
		t.Errorf("error field = %v, want timeout", got)
	}

	all := logs.All()
	if !all[0].Time.Equal(ts) {
		t.Errorf("entry time = %v, want record time %v", all[0].Time, ts)
	}
}

func TestHandler_RespectsCoreLevel(t *testing.T) {
	obs, logs := observer.New(zapcore.ErrorLevel)
	h := New(zap.New(obs))

	_ = h.Handle(core.NewRecord(time.Now(), core.InfoLevel, "db", "dropped", nil))
	_ = h.Handle(core.NewRecord(time.Now(), core.ErrorLevel, "db", "kept", nil))

	if logs.Len() != 1 || logs.All()[0].Message != "kept" {
		t.Errorf("unexpected entries %v", logs.All())
	}
	if !h.ConcurrentSafe() {
		t.Error("zap handler should be concurrent safe")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   core.Level
		want zapcore.Level
	}{
		{core.DebugLevel, zapcore.DebugLevel},
		{core.InfoLevel, zapcore.InfoLevel},
		{core.WarnLevel, zapcore.WarnLevel},
		{core.ErrorLevel, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		if got := Level(tt.in); got != tt.want {
			t.Errorf("Level(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
