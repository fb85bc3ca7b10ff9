// Package logging constructs the slog loggers used across timecard.
//
// Two formats are supported: a compact console format for interactive use and
// JSON for log shippers. Output always goes to stdout and, when a log
// directory is configured, to timecard.log inside it. Components attach a
// "component" attribute which the console format promotes into the message
// prefix.
package logging
