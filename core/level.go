package core

import (
	"fmt"
	"strings"
)

// Level represents the severity level of a log record
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// SilentLevel is a threshold that rejects every record
	SilentLevel
)

// DefaultLevel is the threshold of a logger with no configured override.
const DefaultLevel = InfoLevel

// Levels lists every defined level in rank order.
var Levels = [...]Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, SilentLevel}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case SilentLevel:
		return "SILENT"
	default:
		return "UNKNOWN"
	}
}

// Rank returns the position of the level on the severity scale.
func (l Level) Rank() int {
	return int(l)
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= SilentLevel
}

// Enabled reports whether a record at level l passes the given threshold.
func (l Level) Enabled(threshold Level) bool {
	return threshold.Rank() <= l.Rank()
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, l)
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ParseLevel converts a string to a Level. Matching is case-insensitive
// and ignores surrounding whitespace.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR", "ERR":
		return ErrorLevel, nil
	case "SILENT":
		return SilentLevel, nil
	}
	return DefaultLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}
