package handler

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/philipp01105/nlog/core"
	"github.com/philipp01105/nlog/formatter"
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls. Formatters prepare data in their own pooled buffers
// and call Write once, so the lock is held only during the actual I/O.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	switch w.(type) {
	case *os.File, *lockedWriter:
		return true
	}
	return false
}

// WriterConfig holds configuration for a writer handler
type WriterConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// Automatically detected for io.Discard and *os.File.
	ConcurrentWriter bool
	// Unlocked disables the handler's own write lock. A handler that is
	// unlocked over a writer not known to be concurrent safe reports
	// ConcurrentSafe() == false and cannot be registered.
	Unlocked bool
}

// WriterHandler formats records and writes them to an io.Writer.
type WriterHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	concurrentSafe  bool
}

// NewWriterHandler creates a new writer handler
func NewWriterHandler(cfg WriterConfig) *WriterHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &WriterHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}
	safe := cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer)
	switch {
	case safe:
		h.concurrentSafe = true
	case !cfg.Unlocked:
		h.writer = &lockedWriter{w: cfg.Writer}
		h.concurrentSafe = true
	}

	// Cache WriterFormatter for zero-alloc path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	return h
}

// NewConsoleHandler creates the default handler: text lines on stderr,
// coloured when stderr is a terminal.
func NewConsoleHandler() *WriterHandler {
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return NewWriterHandler(WriterConfig{
		Writer:    os.Stderr,
		Formatter: formatter.NewTextFormatter(formatter.Config{Color: tty}),
	})
}

// Handle formats and writes a record.
func (h *WriterHandler) Handle(rec *core.Record) error {
	if h.writerFormatter != nil {
		return h.writerFormatter.FormatTo(rec, h.writer)
	}

	data, err := h.formatter.Format(rec)
	if err != nil {
		return err
	}
	_, err = h.writer.Write(data)
	return err
}

// ConcurrentSafe reports whether writes are serialized or the writer is safe.
func (h *WriterHandler) ConcurrentSafe() bool {
	return h.concurrentSafe
}
