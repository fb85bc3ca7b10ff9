// Command timecard ingests punch spreadsheets and reports on attendance.
//
// Punch sheets land in a local SQLite database; reports reconstruct daily
// entry/lunch/exit slots from the raw punches, compute worked time, and
// aggregate presence per employee against partner rules.
package main
