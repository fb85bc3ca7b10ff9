// Package timecard reconciles raw time-clock punches into daily attendance
// records.
//
// The pipeline is a strict forward pass: deduplicated events are grouped by
// (employee key, calendar day), each day's ordered punches are classified into
// semantic roles purely by punch count, worked time is derived from the
// classified roles, and anomalous patterns are surfaced as notes on the record
// rather than errors. Every stage is a total function over its input; no stage
// mutates another's output.
//
// The count-driven classifier is intentionally a closed lookup table keyed on
// punch count (see classify.go). The device records entry first and exit last;
// intermediate punches are filled positionally against the modal workday
// pattern entry -> lunch-out -> lunch-in -> breaks -> exit. Days that cross
// midnight are not supported: punches are grouped by the local calendar day of
// each timestamp, so an overnight shift splits into two partial days.
package timecard
