// Package logging installs the process-wide structured logger.
//
// Diagnostics go to standard error or a log file, never standard out,
// which carries only assessment output. Setup selects a text handler on
// stderr by default and a JSON handler with lumberjack size-based
// rotation when logging.file is configured.
package logging
