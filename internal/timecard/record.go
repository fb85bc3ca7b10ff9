package timecard

import (
	"fmt"
	"strings"
	"time"
)

// Diagnostic note texts surfaced on anomalous days. These are user-facing and
// match the wording the review screens expect.
const (
	NoteMissingExit        = "Falta marcação de saída"
	NoteMissingLunchReturn = "Falta volta do almoço"
	NoteMissingBreakStart  = "Volta do almoço sem saída"
	NoteMissingBreakReturn = "Falta retorno de intervalo"
	NoteExtraPunches       = "Múltiplas marcações extras"
)

// Record is the reconciled attendance view of one employee's day. Built once
// per day group and never mutated afterward.
type Record struct {
	Employee     string
	EmployeeKey  string
	Date         string
	Slots        Slots
	WorkedMins   int
	Notes        []string
	Inconsistent bool
}

// BuildRecord runs the classifier, worked-time calculator, and inconsistency
// detector over one day group.
func BuildRecord(group DayGroup) Record {
	slots := Classify(group.Punches)
	notes, inconsistent := diagnose(slots)
	return Record{
		Employee:     group.DisplayName,
		EmployeeKey:  group.EmployeeKey,
		Date:         group.Date,
		Slots:        slots,
		WorkedMins:   WorkedMinutes(slots),
		Notes:        notes,
		Inconsistent: inconsistent,
	}
}

// BuildRecords reconciles every day group in order. The output count equals
// the number of distinct (employee, day) groups.
func BuildRecords(groups []DayGroup) []Record {
	records := make([]Record, 0, len(groups))
	for _, group := range groups {
		records = append(records, BuildRecord(group))
	}
	return records
}

// diagnose flags incomplete or anomalous days. Anomalies are annotations, not
// errors; processing always continues.
func diagnose(slots Slots) ([]string, bool) {
	var notes []string
	inconsistent := false

	if slots.Exit == nil {
		notes = append(notes, NoteMissingExit)
		inconsistent = true
	}
	if slots.LunchOut != nil && slots.LunchIn == nil {
		notes = append(notes, NoteMissingLunchReturn)
		inconsistent = true
	}
	if slots.LunchIn != nil && slots.LunchOut == nil {
		notes = append(notes, NoteMissingBreakStart)
		inconsistent = true
	}
	if slots.Break1 != nil && slots.Break2 == nil {
		notes = append(notes, NoteMissingBreakReturn)
		inconsistent = true
	}
	if slots.Break1 != nil && slots.Break2 != nil {
		gap := int(slots.Break2.Sub(*slots.Break1) / time.Minute)
		notes = append(notes, fmt.Sprintf("Intervalo de %d min", gap))
	}
	if len(slots.ExtraExits) > 0 {
		notes = append(notes, NoteExtraPunches)
		inconsistent = true
	}
	return notes, inconsistent
}

// Worked renders the worked duration as HH:MM.
func (r Record) Worked() string {
	return FormatMinutes(r.WorkedMins)
}

// NoteText joins the day's notes for display; a clean day reads "-".
func (r Record) NoteText() string {
	if len(r.Notes) == 0 {
		return "-"
	}
	return strings.Join(r.Notes, ", ")
}

// PunchCount reports how many punches were classified into the record.
func (r Record) PunchCount() int {
	count := len(r.Slots.ExtraExits)
	for _, slot := range []*time.Time{r.Slots.Entry, r.Slots.LunchOut, r.Slots.LunchIn, r.Slots.Break1, r.Slots.Break2, r.Slots.Exit} {
		if slot != nil {
			count++
		}
	}
	return count
}
