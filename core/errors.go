package core

import "errors"

var (
	// ErrInvalidName is returned when a logger name fails the naming rule.
	ErrInvalidName = errors.New("invalid logger name")
	// ErrDuplicateName is returned by Create for an already registered name.
	ErrDuplicateName = errors.New("duplicate logger name")
	// ErrUnknownLogger is returned by a strict lookup of an unregistered name.
	ErrUnknownLogger = errors.New("unknown logger")
	// ErrInvalidLevel is returned when level text cannot be parsed.
	ErrInvalidLevel = errors.New("invalid level")
	// ErrInvalidArgument is returned for absent or out of range arguments.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotShareable is returned when a handler cannot be shared across goroutines.
	ErrNotShareable = errors.New("handler not shareable")
)
