// Package handler provides the Handler interface and its built-in
// implementations for dispatching log records to outputs.
//
// A Handler receives every record accepted by any logger of a registry,
// in the order handlers were registered. Handlers run synchronously on
// the emitting goroutine; a slow handler slows the emission call that
// reached it. Errors returned by Handle, and panics raised inside it,
// are isolated by the registry's chain and never reach the caller.
//
// Handlers must be safe for concurrent use and must report so through
// ConcurrentSafe. They are compared by identity when removed, so
// implementations should be pointer types.
//
// Built-in handlers:
//
//   - WriterHandler formats records with a formatter.Formatter and
//     writes them to any io.Writer, locking writes unless the writer is
//     known to be safe for concurrent use.
//   - NewConsoleHandler returns the default handler: text to stderr,
//     coloured when stderr is a terminal.
//   - Func adapts a plain function.
//   - MultiHandler groups several handlers into one chain element.
//
// Adapters forwarding records into zap, logrus, zerolog and log/slog
// live in the zaphandler, logrushandler, zerologhandler and sloghandler
// subpackages.
package handler
