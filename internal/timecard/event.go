package timecard

import (
	"time"

	"timecard/internal/names"
)

// Event is a single raw punch recorded by the clock device for one employee.
// Immutable once created.
type Event struct {
	Employee string
	At       time.Time
	Source   string
}

// Key returns the normalized grouping identity for the event's employee.
func (e Event) Key() string {
	return names.NormalizeKey(e.Employee)
}

// MinuteKey returns the employee/minute identity used for intra-batch
// deduplication. Seconds are discarded so clock-skew noise from the physical
// device collapses into one punch.
func (e Event) MinuteKey() string {
	return e.Key() + "|" + e.At.Format("2006-01-02 15:04")
}

// Signature returns the employee/timestamp identity checked against already
// persisted punches before a batch is inserted.
func (e Event) Signature() string {
	return e.Key() + "|" + e.At.Format(time.RFC3339)
}
