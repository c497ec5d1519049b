// Package sloghandler connects nlog with log/slog in both directions.
//
// New returns a handler.Handler that forwards records into any
// slog.Handler, so registry output can join an existing slog pipeline.
// Bridge returns a slog.Handler backed by a registry Logger, so code
// written against *slog.Logger emits through the registry's threshold
// and handler chain.
package sloghandler
