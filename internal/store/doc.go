// Package store persists punch events and partner rules in SQLite.
//
// Punches are append-only: imports insert batches and reports read ranges;
// nothing ever updates a punch in place. Timestamps are stored as naive local
// wall-clock strings ("2006-01-02T15:04:05") so lexicographic comparison in
// SQL matches chronological order, mirroring how the clock device reports
// them. Partner rules are a small keyed table upserted by normalized employee
// key.
//
// Schema changes bump the version in schema.go; users clear the database to
// adopt the new schema.
package store
