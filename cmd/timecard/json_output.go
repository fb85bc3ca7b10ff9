package main

import (
	"timecard/internal/report"
	"timecard/internal/timecard"
)

type dayRecordJSON struct {
	Employee     string   `json:"employee"`
	Date         string   `json:"date"`
	Entry        string   `json:"entry,omitempty"`
	LunchOut     string   `json:"lunch_out,omitempty"`
	LunchIn      string   `json:"lunch_in,omitempty"`
	Break1       string   `json:"break1,omitempty"`
	Break2       string   `json:"break2,omitempty"`
	Exit         string   `json:"exit,omitempty"`
	ExtraExits   []string `json:"extra_exits,omitempty"`
	WorkedMins   int      `json:"worked_minutes"`
	Worked       string   `json:"worked"`
	Notes        []string `json:"notes,omitempty"`
	Inconsistent bool     `json:"inconsistent"`
}

func hoursJSON(records []timecard.Record) []dayRecordJSON {
	out := make([]dayRecordJSON, 0, len(records))
	for _, record := range records {
		entry := dayRecordJSON{
			Employee:     record.Employee,
			Date:         record.Date,
			WorkedMins:   record.WorkedMins,
			Worked:       record.Worked(),
			Notes:        record.Notes,
			Inconsistent: record.Inconsistent,
		}
		if record.Slots.Entry != nil {
			entry.Entry = record.Slots.Entry.Format("15:04")
		}
		if record.Slots.LunchOut != nil {
			entry.LunchOut = record.Slots.LunchOut.Format("15:04")
		}
		if record.Slots.LunchIn != nil {
			entry.LunchIn = record.Slots.LunchIn.Format("15:04")
		}
		if record.Slots.Break1 != nil {
			entry.Break1 = record.Slots.Break1.Format("15:04")
		}
		if record.Slots.Break2 != nil {
			entry.Break2 = record.Slots.Break2.Format("15:04")
		}
		if record.Slots.Exit != nil {
			entry.Exit = record.Slots.Exit.Format("15:04")
		}
		for _, extra := range record.Slots.ExtraExits {
			entry.ExtraExits = append(entry.ExtraExits, extra.Format("15:04"))
		}
		out = append(out, entry)
	}
	return out
}

type presenceItemJSON struct {
	Employee    string         `json:"employee"`
	Partner     string         `json:"partner"`
	WeeklyGoal  int            `json:"weekly_goal"`
	DaysPresent int            `json:"days_present"`
	Weekdays    map[string]int `json:"weekdays"`
	Days        []string       `json:"days"`
}

func presenceJSON(items []report.Item) []presenceItemJSON {
	out := make([]presenceItemJSON, 0, len(items))
	for _, item := range items {
		out = append(out, presenceItemJSON{
			Employee:    item.Employee,
			Partner:     item.Partner,
			WeeklyGoal:  item.WeeklyGoal,
			DaysPresent: item.DaysPresent,
			Weekdays:    item.WeekdayCounts,
			Days:        item.Days,
		})
	}
	return out
}
