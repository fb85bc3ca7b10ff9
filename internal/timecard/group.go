package timecard

import (
	"sort"
	"time"

	"timecard/internal/names"
)

// DayGroup holds one employee's punches for a single calendar day, ordered
// ascending. A group always has at least one punch.
type DayGroup struct {
	EmployeeKey string
	DisplayName string
	Date        string
	Punches     []time.Time
}

// GroupByDay buckets events by (employee key, local calendar day) and sorts
// each bucket's punches ascending. Groups are returned ordered by display name
// then date so downstream output is deterministic.
func GroupByDay(events []Event) []DayGroup {
	type bucketKey struct {
		employee string
		date     string
	}
	buckets := make(map[bucketKey]*DayGroup)
	var order []bucketKey

	for _, event := range events {
		key := bucketKey{employee: event.Key(), date: event.At.Format("2006-01-02")}
		group, ok := buckets[key]
		if !ok {
			group = &DayGroup{
				EmployeeKey: key.employee,
				DisplayName: names.TitleCase(event.Employee),
				Date:        key.date,
			}
			buckets[key] = group
			order = append(order, key)
		}
		group.Punches = append(group.Punches, event.At)
	}

	groups := make([]DayGroup, 0, len(order))
	for _, key := range order {
		group := buckets[key]
		sort.Slice(group.Punches, func(i, j int) bool {
			return group.Punches[i].Before(group.Punches[j])
		})
		groups = append(groups, *group)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].DisplayName != groups[j].DisplayName {
			return groups[i].DisplayName < groups[j].DisplayName
		}
		return groups[i].Date < groups[j].Date
	})
	return groups
}
