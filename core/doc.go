// Package core defines the shared types used across nlog.
//
// It provides the Level type, the severity scale every logger filters
// against, and the Record type that represents a single accepted log
// event. It also holds the sentinel errors returned by the registry,
// the handler chain and level parsing.
//
// Levels are totally ordered by Rank. A logger configured at some
// threshold accepts records whose level rank is greater than or equal
// to the threshold's rank, so a threshold of InfoLevel accepts INFO,
// WARN and ERROR and rejects DEBUG. SilentLevel is a threshold only and
// rejects everything.
//
// A Record is built exactly once per accepted emission and never
// modified afterwards. Records are not pooled: handlers are free to
// retain them after Handle returns.
package core
