package ingest_test

import (
	"strings"
	"testing"

	"timecard/internal/ingest"
)

// sheet builds a row set with the 8-row header block the export template uses.
func sheet(data ...[]string) [][]string {
	rows := make([][]string, 8, 8+len(data))
	for i := range rows {
		rows[i] = []string{"header"}
	}
	return append(rows, data...)
}

func TestParsePunchRowsSkipsHeaderBlock(t *testing.T) {
	rows := sheet(
		[]string{"Ana Lima", "", "2026-03-02 08:00:00"},
	)
	// Poison the header rows with valid-looking data; they must be ignored.
	rows[0] = []string{"Header Person", "", "2026-03-02 07:00:00"}

	events := ingest.ParsePunchRows(rows, "marcacoes.xlsx")
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Employee != "Ana Lima" {
		t.Fatalf("unexpected employee %q", events[0].Employee)
	}
	if events[0].Source != "marcacoes.xlsx" {
		t.Fatalf("unexpected source %q", events[0].Source)
	}
}

func TestParsePunchRowsEncodings(t *testing.T) {
	cases := []struct {
		name     string
		cell     string
		expected string
	}{
		{"dashed with time", "2026-03-02 08:15:30", "2026-03-02 08:15:30"},
		{"dashed date only", "2026-03-02", "2026-03-02 00:00:00"},
		{"slashed with time", "02/03/2026 08:15:30", "2026-03-02 08:15:30"},
		{"slashed date only", "02/03/2026", "2026-03-02 00:00:00"},
		{"serial date only", "45000", "2023-03-15 00:00:00"},
		{"serial with fraction", "45000.5", "2023-03-15 12:00:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			events := ingest.ParsePunchRows(sheet([]string{"Ana Lima", "", tc.cell}), "src")
			if len(events) != 1 {
				t.Fatalf("expected 1 event for cell %q, got %d", tc.cell, len(events))
			}
			if got := events[0].At.Format("2006-01-02 15:04:05"); got != tc.expected {
				t.Fatalf("cell %q parsed to %s, expected %s", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestSerialMatchesSlashedEquivalent(t *testing.T) {
	serial := ingest.ParsePunchRows(sheet([]string{"Ana", "", "45000"}), "src")
	slashed := ingest.ParsePunchRows(sheet([]string{"Ana", "", "15/03/2023"}), "src")
	if len(serial) != 1 || len(slashed) != 1 {
		t.Fatalf("expected both encodings to parse, got %d and %d", len(serial), len(slashed))
	}
	if !serial[0].At.Equal(slashed[0].At) {
		t.Fatalf("serial %v != slashed %v", serial[0].At, slashed[0].At)
	}
}

func TestParsePunchRowsDropsInvalidRows(t *testing.T) {
	rows := sheet(
		[]string{"", "", "2026-03-02 08:00:00"},        // blank name
		[]string{"   ", "", "2026-03-02 08:00:00"},     // whitespace name
		[]string{"Ana Lima", "", "not a date"},         // unparsable cell
		[]string{"Ana Lima", "", "2026-02-31"},         // impossible date
		[]string{"Ana Lima", "", "2026-13-01"},         // month 13
		[]string{"Ana Lima", "", "0000-00-00"},         // zero fields
		[]string{"Ana Lima"},                           // short row
		[]string{"Ana Lima", "", "2026-03-02 08:00:00"}, // the one valid row
	)
	events := ingest.ParsePunchRows(rows, "src")
	if len(events) != 1 {
		t.Fatalf("expected 1 accepted row, got %d", len(events))
	}
}

func TestParsePunchRowsEmptySheet(t *testing.T) {
	if events := ingest.ParsePunchRows(nil, "src"); events != nil {
		t.Fatalf("expected nil for empty sheet, got %v", events)
	}
	if events := ingest.ParsePunchRows(sheet(), "src"); len(events) != 0 {
		t.Fatalf("expected no events for header-only sheet, got %d", len(events))
	}
}

func TestReadRowsCSV(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		b.WriteString("header,,\n")
	}
	b.WriteString("Ana Lima,,2026-03-02 08:00:00\n")

	rows, err := ingest.ReadRows(strings.NewReader(b.String()), "export.csv")
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	events := ingest.ParsePunchRows(rows, "export.csv")
	if len(events) != 1 {
		t.Fatalf("expected 1 event from csv, got %d", len(events))
	}
}
