package formatter

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/philipp01105/nlog/core"
)

// TextFormatter formats log records as human-readable text
type TextFormatter struct {
	Config
	brackets [core.SilentLevel + 1]string
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.DebugLevel:  " [DEBUG] ",
	core.InfoLevel:   " [INFO] ",
	core.WarnLevel:   " [WARN] ",
	core.ErrorLevel:  " [ERROR] ",
	core.SilentLevel: " [SILENT] ",
}

var levelColors = [...]color.Attribute{
	core.DebugLevel:  color.FgHiBlack,
	core.InfoLevel:   color.FgCyan,
	core.WarnLevel:   color.FgYellow,
	core.ErrorLevel:  color.FgRed,
	core.SilentLevel: color.Reset,
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	f := &TextFormatter{Config: cfg}
	for l, s := range levelBrackets {
		if cfg.Color {
			c := color.New(levelColors[l])
			c.EnableColor()
			s = " " + c.Sprint(strings.TrimSpace(s)) + " "
		}
		f.brackets[l] = s
	}
	return f
}

// Format formats a record as text
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(rec.Time().AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if l := rec.Level(); l.Valid() {
		buf.WriteString(f.brackets[l])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	buf.WriteByte('[')
	buf.WriteString(rec.Logger())
	buf.WriteString("] ")
	buf.WriteString(rec.Message())

	if err := rec.Err(); err != nil {
		short := err.Error()
		buf.WriteString(" error=")
		buf.WriteString(short)
		if !f.NoTrace {
			writeTrace(buf, short, fmt.Sprintf("%+v", err))
		}
	}

	buf.WriteByte('\n')
}

// writeTrace appends the extended rendering of an error when it carries
// more than its message, one tab-indented line per trace line.
func writeTrace(buf *bytes.Buffer, short, full string) {
	if full == short {
		return
	}
	full = strings.TrimPrefix(full, short)
	for _, line := range strings.Split(strings.Trim(full, "\n"), "\n") {
		if line == "" {
			continue
		}
		buf.WriteString("\n\t")
		buf.WriteString(line)
	}
}
