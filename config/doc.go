// Package config loads the initial per-logger thresholds.
//
// The source is a properties file, by default lib/log.props under the
// installation root, with one "loggerName = levelName" pair per line:
//
//	# lib/log.props
//	db    = warn
//	cache = debug
//
// Entries whose value is not a level are dropped and reported; the rest
// of the file still applies. A missing file is not an error. Any other
// failure to read or parse the file is reported and treated as an empty
// table, so a broken configuration never stops the process.
package config
