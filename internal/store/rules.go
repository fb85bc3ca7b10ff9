package store

import (
	"context"
	"fmt"
	"time"

	"timecard/internal/names"
	"timecard/internal/report"
)

// PartnerRule is the persisted employee-to-partner assignment.
type PartnerRule struct {
	ID         int64
	Employee   string
	Partner    string
	WeeklyGoal int
	UpdatedAt  time.Time
}

// SetRule inserts or updates the rule for an employee, keyed on the
// normalized employee name.
func (s *Store) SetRule(ctx context.Context, employee, partner string, weeklyGoal int) error {
	key := names.NormalizeKey(employee)
	if key == "" {
		return fmt.Errorf("employee name is blank")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO partner_rules (employee_name, employee_key, partner_name, weekly_goal, updated_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(employee_key) DO UPDATE SET
             employee_name = excluded.employee_name,
             partner_name = excluded.partner_name,
             weekly_goal = excluded.weekly_goal,
             updated_at = excluded.updated_at`,
		employee, key, partner, weeklyGoal, time.Now().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("upsert rule: %w", err)
	}
	return nil
}

// ReplaceRules swaps the whole rule table for a freshly imported sheet in one
// transaction.
func (s *Store) ReplaceRules(ctx context.Context, rules []PartnerRule) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rules tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM partner_rules`); err != nil {
		return fmt.Errorf("clear rules: %w", err)
	}

	now := time.Now().Format(timeLayout)
	for _, rule := range rules {
		key := names.NormalizeKey(rule.Employee)
		if key == "" {
			continue
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO partner_rules (employee_name, employee_key, partner_name, weekly_goal, updated_at)
             VALUES (?, ?, ?, ?, ?)
             ON CONFLICT(employee_key) DO UPDATE SET
                 employee_name = excluded.employee_name,
                 partner_name = excluded.partner_name,
                 weekly_goal = excluded.weekly_goal,
                 updated_at = excluded.updated_at`,
			rule.Employee, key, rule.Partner, rule.WeeklyGoal, now)
		if err != nil {
			return fmt.Errorf("insert rule: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rules: %w", err)
	}
	return nil
}

// Rules returns every partner rule ordered by employee name.
func (s *Store) Rules(ctx context.Context) ([]PartnerRule, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, employee_name, partner_name, weekly_goal, updated_at
         FROM partner_rules ORDER BY employee_name COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("query rules: %w", err)
	}
	defer rows.Close()

	var rules []PartnerRule
	for rows.Next() {
		var (
			rule      PartnerRule
			updatedAt string
		)
		if err := rows.Scan(&rule.ID, &rule.Employee, &rule.Partner, &rule.WeeklyGoal, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		if at, err := parseTime(updatedAt); err == nil {
			rule.UpdatedAt = at
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

// RemoveRule deletes the rule for an employee. Returns false when no rule
// matched.
func (s *Store) RemoveRule(ctx context.Context, employee string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM partner_rules WHERE employee_key = ?`, names.NormalizeKey(employee))
	if err != nil {
		return false, fmt.Errorf("delete rule: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// ReportRules converts the stored rules into the aggregator's view of them.
func ReportRules(rules []PartnerRule) []report.Rule {
	out := make([]report.Rule, 0, len(rules))
	for _, rule := range rules {
		out = append(out, report.Rule{
			Employee:   rule.Employee,
			Partner:    rule.Partner,
			WeeklyGoal: rule.WeeklyGoal,
		})
	}
	return out
}
