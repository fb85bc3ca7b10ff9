package timecard

import (
	"fmt"
	"time"
)

// WorkedMinutes derives the worked duration for classified slots: exit minus
// entry, less the lunch interval and the break interval when both ends of each
// are present. Floored to whole minutes. A day without an exit works out to
// zero.
func WorkedMinutes(slots Slots) int {
	if slots.Entry == nil || slots.Exit == nil {
		return 0
	}
	worked := slots.Exit.Sub(*slots.Entry)
	if slots.LunchOut != nil && slots.LunchIn != nil {
		worked -= slots.LunchIn.Sub(*slots.LunchOut)
	}
	if slots.Break1 != nil && slots.Break2 != nil {
		worked -= slots.Break2.Sub(*slots.Break1)
	}
	if worked < 0 {
		return 0
	}
	return int(worked / time.Minute)
}

// FormatMinutes renders a minute count as zero-padded HH:MM. Days are assumed
// to be at most 24 hours; there is no days component.
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
