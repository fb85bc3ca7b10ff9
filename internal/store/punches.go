package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"timecard/internal/timecard"
)

// InsertPunches appends a batch of events in chunks of batchSize rows per
// transaction. Events are stored as given; deduplication happens before this
// call.
func (s *Store) InsertPunches(ctx context.Context, batchID string, events []timecard.Event, batchSize int) (int64, error) {
	if len(events) == 0 {
		return 0, nil
	}
	if batchSize < 1 {
		batchSize = 1
	}

	now := time.Now().Format(timeLayout)
	var inserted int64
	for start := 0; start < len(events); start += batchSize {
		end := min(start+batchSize, len(events))
		if err := s.insertChunk(ctx, batchID, events[start:end], now); err != nil {
			return inserted, err
		}
		inserted += int64(end - start)
	}
	return inserted, nil
}

func (s *Store) insertChunk(ctx context.Context, batchID string, events []timecard.Event, createdAt string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO punches (employee_name, employee_key, punched_at, source_label, batch_id, created_at)
         VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, event := range events {
		_, err := stmt.ExecContext(ctx,
			event.Employee,
			event.Key(),
			formatTime(event.At),
			nullableString(event.Source),
			nullableString(batchID),
			createdAt,
		)
		if err != nil {
			return fmt.Errorf("insert punch: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert: %w", err)
	}
	return nil
}

// Signatures returns the (employee key, timestamp) signatures of persisted
// punches within the span, inclusive. Imports use this to exclude rows that
// already exist before inserting a new batch.
func (s *Store) Signatures(ctx context.Context, from, to time.Time) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT employee_name, punched_at FROM punches WHERE punched_at >= ? AND punched_at <= ?`,
		formatTime(from), formatTime(to))
	if err != nil {
		return nil, fmt.Errorf("query signatures: %w", err)
	}
	defer rows.Close()

	signatures := make(map[string]struct{})
	for rows.Next() {
		event, err := scanPunch(rows)
		if err != nil {
			return nil, err
		}
		signatures[event.Signature()] = struct{}{}
	}
	return signatures, rows.Err()
}

// PunchesBetween returns punches within the span, inclusive, ordered
// chronologically.
func (s *Store) PunchesBetween(ctx context.Context, from, to time.Time) ([]timecard.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT employee_name, punched_at, source_label FROM punches
         WHERE punched_at >= ? AND punched_at <= ? ORDER BY punched_at`,
		formatTime(from), formatTime(to))
	if err != nil {
		return nil, fmt.Errorf("query punches: %w", err)
	}
	defer rows.Close()

	var events []timecard.Event
	for rows.Next() {
		var (
			name      string
			punchedAt string
			source    sql.NullString
		)
		if err := rows.Scan(&name, &punchedAt, &source); err != nil {
			return nil, fmt.Errorf("scan punch: %w", err)
		}
		at, err := parseTime(punchedAt)
		if err != nil {
			return nil, fmt.Errorf("parse punch time %q: %w", punchedAt, err)
		}
		events = append(events, timecard.Event{Employee: name, At: at, Source: source.String})
	}
	return events, rows.Err()
}

// LatestPunch returns the most recent punch timestamp, or false when the
// store is empty. Reports use it to default the query range to the last
// month with data.
func (s *Store) LatestPunch(ctx context.Context) (time.Time, bool, error) {
	var latest sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT MAX(punched_at) FROM punches`).Scan(&latest)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("query latest punch: %w", err)
	}
	if !latest.Valid || latest.String == "" {
		return time.Time{}, false, nil
	}
	at, err := parseTime(latest.String)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse latest punch %q: %w", latest.String, err)
	}
	return at, true, nil
}

// ClearPunches removes every stored punch.
func (s *Store) ClearPunches(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM punches`)
	if err != nil {
		return 0, fmt.Errorf("clear punches: %w", err)
	}
	return res.RowsAffected()
}

func scanPunch(scanner interface{ Scan(dest ...any) error }) (timecard.Event, error) {
	var (
		name      string
		punchedAt string
	)
	if err := scanner.Scan(&name, &punchedAt); err != nil {
		return timecard.Event{}, fmt.Errorf("scan punch: %w", err)
	}
	at, err := parseTime(punchedAt)
	if err != nil {
		return timecard.Event{}, fmt.Errorf("parse punch time %q: %w", punchedAt, err)
	}
	return timecard.Event{Employee: name, At: at}, nil
}
