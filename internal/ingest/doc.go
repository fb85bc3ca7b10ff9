// Package ingest converts raw spreadsheet rows into typed punch events and
// partner rule rows.
//
// The punch sheet layout is a fixed contract with the clock vendor's export
// template: an 8-row header block, employee name in column 0, raw timestamp in
// column 2, every other column ignored. Timestamps arrive in three encodings
// (ISO dashed, Brazilian slashed, Excel serial day count) and are detected per
// cell. Parsing never fails: rows that cannot be understood are silently
// dropped and the caller sees only the accepted events.
//
// Rule sheets are free-form: the first row is a header matched fuzzily and
// accent-insensitively against known column aliases.
package ingest
