package report

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"timecard/internal/names"
	"timecard/internal/timecard"
)

// Weekday column labels, Monday through Friday. Weekend punches still count
// toward days present but have no histogram column.
var WeekdayLabels = []string{"Seg", "Ter", "Qua", "Qui", "Sex"}

var weekdayLabelByDay = map[time.Weekday]string{
	time.Monday:    "Seg",
	time.Tuesday:   "Ter",
	time.Wednesday: "Qua",
	time.Thursday:  "Qui",
	time.Friday:    "Sex",
}

// Rule maps an employee to the partner responsible for them and a weekly
// presence goal. Owned by the rules editor; read-only here.
type Rule struct {
	Employee   string
	Partner    string
	WeeklyGoal int
}

// Item is one employee's aggregated presence over the queried range.
type Item struct {
	Employee      string
	Partner       string
	WeeklyGoal    int
	DaysPresent   int
	WeekdayCounts map[string]int
	Days          []string
}

// Filter narrows which daily records qualify for a report. Zero values match
// everything; name comparisons happen on normalized keys so casing and accents
// never matter.
type Filter struct {
	Employee string
	Partner  string
	Month    string // "yyyy-mm"
	Search   string
}

type ruleEntry struct {
	partner    string
	weeklyGoal int
}

func indexRules(rules []Rule) map[string]ruleEntry {
	index := make(map[string]ruleEntry, len(rules))
	for _, rule := range rules {
		index[names.NormalizeKey(rule.Employee)] = ruleEntry{
			partner:    rule.Partner,
			weeklyGoal: rule.WeeklyGoal,
		}
	}
	return index
}

func (f Filter) matches(record timecard.Record, partner string) bool {
	if f.Month != "" && !strings.HasPrefix(record.Date, f.Month) {
		return false
	}
	if f.Employee != "" && names.NormalizeKey(f.Employee) != record.EmployeeKey {
		return false
	}
	if f.Partner != "" && names.NormalizeKey(f.Partner) != names.NormalizeKey(partner) {
		return false
	}
	if f.Search != "" {
		needle := names.NormalizeKey(f.Search)
		if !strings.Contains(record.EmployeeKey, needle) && !strings.Contains(names.NormalizeKey(partner), needle) {
			return false
		}
	}
	return true
}

// Filtered returns the daily records that qualify under the filter, in their
// original order. Used by the hours and descriptive views.
func Filtered(records []timecard.Record, rules []Rule, filter Filter) []timecard.Record {
	index := indexRules(rules)
	out := make([]timecard.Record, 0, len(records))
	for _, record := range records {
		partner := index[record.EmployeeKey].partner
		if filter.matches(record, partner) {
			out = append(out, record)
		}
	}
	return out
}

// Presence aggregates qualifying records into per-employee presence items:
// distinct days present, a Monday-to-Friday histogram, and the sorted
// day-of-month numbers the employee appeared on. Output is ordered by
// employee display name using a case-insensitive Portuguese collation.
func Presence(records []timecard.Record, rules []Rule, filter Filter) []Item {
	index := indexRules(rules)

	type accumulator struct {
		item Item
		days map[string]struct{}
	}
	byKey := make(map[string]*accumulator)

	for _, record := range records {
		entry := index[record.EmployeeKey]
		if !filter.matches(record, entry.partner) {
			continue
		}
		acc, ok := byKey[record.EmployeeKey]
		if !ok {
			partner := entry.partner
			if partner == "" {
				partner = "-"
			} else {
				partner = names.TitleCase(partner)
			}
			acc = &accumulator{
				item: Item{
					Employee:      record.Employee,
					Partner:       partner,
					WeeklyGoal:    entry.weeklyGoal,
					WeekdayCounts: make(map[string]int),
				},
				days: make(map[string]struct{}),
			}
			byKey[record.EmployeeKey] = acc
		}
		if _, seen := acc.days[record.Date]; seen {
			continue
		}
		acc.days[record.Date] = struct{}{}
		acc.item.DaysPresent++
		if date, err := time.Parse("2006-01-02", record.Date); err == nil {
			if label, ok := weekdayLabelByDay[date.Weekday()]; ok {
				acc.item.WeekdayCounts[label]++
			}
			acc.item.Days = append(acc.item.Days, strconv.Itoa(date.Day()))
		}
	}

	items := make([]Item, 0, len(byKey))
	for _, acc := range byKey {
		sort.Slice(acc.item.Days, func(i, j int) bool {
			a, _ := strconv.Atoi(acc.item.Days[i])
			b, _ := strconv.Atoi(acc.item.Days[j])
			return a < b
		})
		items = append(items, acc.item)
	}

	collator := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		return collator.CompareString(items[i].Employee, items[j].Employee) < 0
	})
	return items
}
