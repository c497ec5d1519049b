// Package formatter defines how log records are rendered into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers
// check for WriterFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on
// the write path.
//
// The built-in TextFormatter renders one human readable line per
// record: timestamp, bracketed level, bracketed logger name, message
// and, when the record carries a failure payload, the error text. If
// the payload renders a richer form with %+v (for example an error
// created by github.com/pkg/errors with a stack trace) that trace is
// appended on the following lines, indented by a tab.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
