package timecard_test

import (
	"testing"

	"timecard/internal/timecard"
)

func TestGroupByDaySortsPunchesAscending(t *testing.T) {
	events := []timecard.Event{
		{Employee: "Ana Lima", At: mustTime(t, "2026-03-02 18:00")},
		{Employee: "Ana Lima", At: mustTime(t, "2026-03-02 08:00")},
		{Employee: "Ana Lima", At: mustTime(t, "2026-03-02 12:00")},
	}

	groups := timecard.GroupByDay(events)
	if len(groups) != 1 {
		t.Fatalf("expected one group, got %d", len(groups))
	}
	group := groups[0]
	if group.Date != "2026-03-02" {
		t.Fatalf("unexpected group date %s", group.Date)
	}
	for i := 1; i < len(group.Punches); i++ {
		if !group.Punches[i-1].Before(group.Punches[i]) {
			t.Fatalf("punches out of order at %d: %v", i, group.Punches)
		}
	}
}

func TestGroupByDaySplitsAcrossMidnight(t *testing.T) {
	// Overnight shifts split into two partial days; the grouper does not try
	// to stitch them back together.
	events := []timecard.Event{
		{Employee: "Ana Lima", At: mustTime(t, "2026-03-02 22:00")},
		{Employee: "Ana Lima", At: mustTime(t, "2026-03-03 06:00")},
	}
	groups := timecard.GroupByDay(events)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups across midnight, got %d", len(groups))
	}
}

func TestGroupByDayNormalizesEmployeeKey(t *testing.T) {
	events := []timecard.Event{
		{Employee: "JOÃO  DA  Silva ", At: mustTime(t, "2026-03-02 08:00")},
		{Employee: "joão da silva", At: mustTime(t, "2026-03-02 18:00")},
	}
	groups := timecard.GroupByDay(events)
	if len(groups) != 1 {
		t.Fatalf("expected variants to group together, got %d groups", len(groups))
	}
	if groups[0].EmployeeKey != "joao da silva" {
		t.Fatalf("unexpected key %q", groups[0].EmployeeKey)
	}
	if groups[0].DisplayName != "João Da Silva" {
		t.Fatalf("unexpected display name %q", groups[0].DisplayName)
	}
}
