package logger

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"

	"github.com/philipp01105/nlog/core"
	"github.com/philipp01105/nlog/handler"
)

const propsPath = "/opt/nlog/lib/log.props"

func TestNewDefault_ConfiguredLevel(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, propsPath, []byte("db = warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	diag := &zaptest.Buffer{}

	r := newDefault(fs, propsPath, zapcore.Lock(diag))
	db, err := r.Create("db")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if db.Level() != core.WarnLevel {
		t.Errorf("db threshold = %v, want WARN", db.Level())
	}
	if db.Enabled(core.InfoLevel) {
		t.Error("db should reject INFO")
	}
	if !db.Enabled(core.ErrorLevel) {
		t.Error("db should accept ERROR")
	}
	if diag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %s", diag.String())
	}
}

func TestNewDefault_InvalidLevelDropped(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, propsPath, []byte("cache = bogus\nweb = debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	diag := &zaptest.Buffer{}

	r := newDefault(fs, propsPath, zapcore.Lock(diag))

	lines := diag.Lines()
	if len(lines) != 1 || !strings.Contains(lines[0], "cache = bogus") {
		t.Fatalf("expected one diagnostic naming the entry, got %q", lines)
	}
	if got := r.MustGet("cache").Level(); got != core.DefaultLevel {
		t.Errorf("cache threshold = %v, want %v", got, core.DefaultLevel)
	}
	if got := r.MustGet("web").Level(); got != core.DebugLevel {
		t.Errorf("web threshold = %v, want DEBUG", got)
	}
}

func TestNewDefault_MissingFile(t *testing.T) {
	diag := &zaptest.Buffer{}
	r := newDefault(afero.NewMemMapFs(), propsPath, zapcore.Lock(diag))

	if diag.Len() != 0 {
		t.Errorf("missing file should be silent, got: %s", diag.String())
	}
	if got := r.MustGet("any").Level(); got != core.DefaultLevel {
		t.Errorf("threshold = %v, want %v", got, core.DefaultLevel)
	}
	hs := r.Handlers()
	if len(hs) != 1 {
		t.Fatalf("default registry has %d handlers, want 1", len(hs))
	}
	if _, ok := hs[0].(*handler.WriterHandler); !ok {
		t.Errorf("default handler is %T", hs[0])
	}
}

// brokenFs fails every Open with a permission error.
type brokenFs struct{ afero.Fs }

func (brokenFs) Open(name string) (afero.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
}

func TestNewDefault_UnreadableFile(t *testing.T) {
	diag := &zaptest.Buffer{}

	r := newDefault(brokenFs{afero.NewMemMapFs()}, propsPath, zapcore.Lock(diag))

	if !strings.Contains(diag.String(), "cannot load "+propsPath) {
		t.Errorf("expected load failure diagnostic, got: %q", diag.String())
	}
	if got := r.MustGet("any").Level(); got != core.DefaultLevel {
		t.Errorf("threshold = %v, want %v", got, core.DefaultLevel)
	}
}

func TestDefault_Singleton(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default() returned different registries")
	}

	l, err := Get("nlog-default-test")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found, _ := Find("nlog-default-test", true); found != l {
		t.Error("Find() did not return the logger created by Get()")
	}
	if MustGet("nlog-default-test") != l {
		t.Error("MustGet() did not return the same logger")
	}
	if _, err := Create("nlog-default-test"); err == nil {
		t.Error("Create() of an existing name should fail")
	}

	found := false
	for _, x := range List() {
		if x == l {
			found = true
		}
	}
	if !found {
		t.Error("List() is missing the created logger")
	}

	h := &recorder{}
	if err := AddHandler(h); err != nil {
		t.Fatalf("AddHandler() error = %v", err)
	}
	defer RemoveHandler(h)
	if countOf(Handlers(), h) != 1 {
		t.Error("Handlers() is missing the added handler")
	}
}
