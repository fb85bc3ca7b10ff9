package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"

	"timecard/internal/timecard"
)

// headerRowCount is the number of leading rows in the punch export template
// before data begins. Format contract, not configurable.
const headerRowCount = 8

const (
	nameColumn      = 0
	timestampColumn = 2
)

// excelEpochOffset is the Excel serial day number of the Unix epoch
// (1970-01-01, counted from 1899-12-30).
const excelEpochOffset = 25569

// ParsePunchRows converts tabular rows into punch events tagged with the
// originating source label. Rows before the header offset, rows with a blank
// name cell, and rows whose timestamp cannot be parsed into a real calendar
// date are discarded without error.
func ParsePunchRows(rows [][]string, source string) []timecard.Event {
	if len(rows) <= headerRowCount {
		return nil
	}
	events := make([]timecard.Event, 0, len(rows)-headerRowCount)
	for _, row := range rows[headerRowCount:] {
		if len(row) <= timestampColumn {
			continue
		}
		name := strings.TrimSpace(row[nameColumn])
		if name == "" {
			continue
		}
		at, ok := parseTimestamp(row[timestampColumn])
		if !ok {
			continue
		}
		events = append(events, timecard.Event{Employee: name, At: at, Source: source})
	}
	return events
}

// parseTimestamp detects the cell encoding in priority order: dashed ISO date,
// slashed Brazilian date, then a numeric Excel serial day count.
func parseTimestamp(cell string) (time.Time, bool) {
	value := strings.TrimSpace(cell)
	if value == "" {
		return time.Time{}, false
	}
	switch {
	case strings.Contains(value, "-"):
		return parseDashed(value)
	case strings.Contains(value, "/"):
		return parseSlashed(value)
	default:
		return parseSerial(value)
	}
}

// parseDashed handles "yyyy-mm-dd" with an optional "hh:mm:ss" suffix.
func parseDashed(value string) (time.Time, bool) {
	datePart, timePart := splitDateTime(value)
	fields := strings.Split(datePart, "-")
	if len(fields) != 3 {
		return time.Time{}, false
	}
	return buildTime(fields[0], fields[1], fields[2], timePart)
}

// parseSlashed handles "dd/mm/yyyy" with an optional "hh:mm:ss" suffix.
func parseSlashed(value string) (time.Time, bool) {
	datePart, timePart := splitDateTime(value)
	fields := strings.Split(datePart, "/")
	if len(fields) != 3 {
		return time.Time{}, false
	}
	return buildTime(fields[2], fields[1], fields[0], timePart)
}

// parseSerial handles Excel serial day counts: whole days since 1899-12-30
// plus a fractional day for the time component.
func parseSerial(value string) (time.Time, bool) {
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil || serial <= 0 {
		return time.Time{}, false
	}
	days := math.Floor(serial)
	date := time.Unix(int64(days-excelEpochOffset)*86400, 0).UTC()
	seconds := math.Round((serial - days) * 86400)
	year, month, day := date.Date()
	at := time.Date(year, month, day, 0, 0, 0, 0, time.Local).Add(time.Duration(seconds) * time.Second)
	return at, true
}

func splitDateTime(value string) (string, string) {
	parts := strings.Fields(value)
	if len(parts) > 1 {
		return parts[0], parts[1]
	}
	return parts[0], "00:00:00"
}

// buildTime assembles a timestamp from string fields, rejecting combinations
// that do not form a real calendar date (zero fields, month 13, February 31).
func buildTime(yearStr, monthStr, dayStr, timePart string) (time.Time, bool) {
	year, errY := strconv.Atoi(strings.TrimSpace(yearStr))
	month, errM := strconv.Atoi(strings.TrimSpace(monthStr))
	day, errD := strconv.Atoi(strings.TrimSpace(dayStr))
	if errY != nil || errM != nil || errD != nil {
		return time.Time{}, false
	}
	if year <= 0 || month <= 0 || month > 12 || day <= 0 {
		return time.Time{}, false
	}

	hour, minute, second := parseClock(timePart)
	at := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local)
	if at.Year() != year || at.Month() != time.Month(month) || at.Day() != day {
		return time.Time{}, false
	}
	return at, true
}

// parseClock reads "hh:mm:ss"; missing or malformed components default to zero.
func parseClock(value string) (int, int, int) {
	fields := strings.Split(value, ":")
	clock := [3]int{}
	for i := 0; i < len(fields) && i < 3; i++ {
		if n, err := strconv.Atoi(strings.TrimSpace(fields[i])); err == nil {
			clock[i] = n
		}
	}
	return clock[0], clock[1], clock[2]
}
