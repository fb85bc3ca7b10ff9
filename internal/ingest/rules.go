package ingest

import (
	"strconv"
	"strings"

	"timecard/internal/names"
)

// RuleRow is one employee-to-partner assignment parsed from a rule sheet.
type RuleRow struct {
	Employee   string
	Partner    string
	WeeklyGoal int
}

// defaultWeeklyGoal is assumed when a rule sheet omits the goal column.
const defaultWeeklyGoal = 3

var (
	partnerHeaderAliases  = []string{"socio", "sócio", "responsavel", "gestor", "partner"}
	employeeHeaderAliases = []string{"nome", "colaborador", "funcionario"}
	goalHeaderAliases     = []string{"meta", "dias", "regra"}
)

// ParseRuleRows reads partner assignments from a rule sheet. The first row is
// treated as a header and matched fuzzily: column titles are compared on their
// normalized keys so accents and casing never matter. Rows without an
// employee name are skipped; duplicate employees keep the last row seen.
func ParseRuleRows(rows [][]string) []RuleRow {
	if len(rows) < 2 {
		return nil
	}

	employeeCol := findColumn(rows[0], employeeHeaderAliases)
	partnerCol := findColumn(rows[0], partnerHeaderAliases)
	goalCol := findColumn(rows[0], goalHeaderAliases)
	if employeeCol < 0 {
		return nil
	}

	byKey := make(map[string]int)
	var parsed []RuleRow
	for _, row := range rows[1:] {
		employee := cellAt(row, employeeCol)
		if employee == "" {
			continue
		}
		rule := RuleRow{
			Employee:   employee,
			Partner:    cellAt(row, partnerCol),
			WeeklyGoal: defaultWeeklyGoal,
		}
		if rule.Partner == "" {
			rule.Partner = "Não Definido"
		}
		if goal, err := strconv.Atoi(cellAt(row, goalCol)); err == nil && goal > 0 {
			rule.WeeklyGoal = goal
		}

		key := names.NormalizeKey(employee)
		if idx, ok := byKey[key]; ok {
			parsed[idx] = rule
			continue
		}
		byKey[key] = len(parsed)
		parsed = append(parsed, rule)
	}
	return parsed
}

func findColumn(header []string, aliases []string) int {
	for i, title := range header {
		key := names.NormalizeKey(title)
		for _, alias := range aliases {
			if key == names.NormalizeKey(alias) {
				return i
			}
		}
	}
	return -1
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
