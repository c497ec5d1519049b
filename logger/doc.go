// Package logger is the public API of nlog. Most users only need to
// import this package.
//
// A Registry maps unique names to Loggers and owns the handler chain
// all of its loggers dispatch to. The process registry is built on
// first use by Default, seeded from the levels file found by
// config.DefaultPath, and starts with a console handler on stderr.
// The package-level functions Get, Find, List, AddHandler and friends
// delegate to it:
//
//	var log = logger.MustGet("db")
//
//	log.Info("connected")
//	log.WarnErr("slow query", err)
//
// Names are unique per registry. Get is get-or-create, Create fails on
// a taken name, and Find looks up without creating.
//
// Each Logger has a threshold that may be changed at any time. Level
// checks load a single atomic word before any allocation, so
// filtered-out messages cost one comparison. An accepted message
// becomes an immutable core.Record that is handed to every handler in
// registration order.
//
// The chain is copy-on-write: adding or removing a handler publishes a
// new slice, and dispatch never takes a lock. A handler that fails or
// panics does not prevent later handlers from seeing the record; the
// failure is written to the registry's diagnostic output instead of
// reaching the caller.
//
// Tests and embedded uses can build isolated registries with New:
//
//	reg, err := logger.New(
//	    logger.WithHandlers(myHandler),
//	    logger.WithLevels(map[string]logger.Level{"db": logger.WarnLevel}),
//	)
package logger
