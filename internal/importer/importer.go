package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"timecard/internal/config"
	"timecard/internal/ingest"
	"timecard/internal/logging"
	"timecard/internal/store"
	"timecard/internal/timecard"
)

// ErrImportBusy indicates another import holds the import lock.
var ErrImportBusy = errors.New("another import is already running")

// lockRetryDelay is how often a waiting import re-attempts the lock.
const lockRetryDelay = 250 * time.Millisecond

// Importer ingests spreadsheets into the punch store.
type Importer struct {
	cfg    *config.Config
	store  *store.Store
	logger *slog.Logger
}

// Summary describes what happened to one punch sheet import.
type Summary struct {
	BatchID      string
	Source       string
	Accepted     int
	Deduplicated int
	Duplicates   int
	Inserted     int64
}

// New constructs an importer.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger) *Importer {
	return &Importer{
		cfg:    cfg,
		store:  st,
		logger: logging.WithComponent(logger, "importer"),
	}
}

// ImportPunches parses a punch sheet and appends its new events to the store.
// Malformed rows are dropped silently; the summary carries the accepted,
// deduplicated, and inserted counts.
func (i *Importer) ImportPunches(ctx context.Context, r io.Reader, filename string) (Summary, error) {
	source := filepath.Base(filename)
	summary := Summary{Source: source}

	rows, err := ingest.ReadRows(r, filename)
	if err != nil {
		return summary, fmt.Errorf("read sheet: %w", err)
	}
	events := ingest.ParsePunchRows(rows, source)
	summary.Accepted = len(events)
	if len(events) == 0 {
		i.logger.Warn("no valid punch rows in sheet", slog.String("file", source))
		return summary, nil
	}

	deduped := timecard.Dedupe(events)
	summary.Deduplicated = summary.Accepted - len(deduped)

	unlock, err := i.acquireLock(ctx)
	if err != nil {
		return summary, err
	}
	defer unlock()

	fresh, duplicates, err := i.excludeExisting(ctx, deduped)
	if err != nil {
		return summary, err
	}
	summary.Duplicates = duplicates
	if len(fresh) == 0 {
		i.logger.Info("no new punches in sheet",
			slog.String("file", source), slog.Int("duplicates", duplicates))
		return summary, nil
	}

	summary.BatchID = uuid.NewString()
	inserted, err := i.store.InsertPunches(ctx, summary.BatchID, fresh, i.cfg.Import.BatchSize)
	summary.Inserted = inserted
	if err != nil {
		return summary, fmt.Errorf("insert punches: %w", err)
	}

	i.logger.Info("punch sheet imported",
		slog.String("file", source),
		slog.String("batch", summary.BatchID),
		slog.Int("accepted", summary.Accepted),
		slog.Int("duplicates", summary.Duplicates),
		slog.Int64("inserted", summary.Inserted))
	return summary, nil
}

// ImportRules parses a partner rule sheet and replaces the stored rule set.
// Returns the number of rules written.
func (i *Importer) ImportRules(ctx context.Context, r io.Reader, filename string) (int, error) {
	rows, err := ingest.ReadRows(r, filename)
	if err != nil {
		return 0, fmt.Errorf("read sheet: %w", err)
	}
	parsed := ingest.ParseRuleRows(rows)
	if len(parsed) == 0 {
		return 0, nil
	}

	rules := make([]store.PartnerRule, 0, len(parsed))
	for _, row := range parsed {
		rules = append(rules, store.PartnerRule{
			Employee:   row.Employee,
			Partner:    row.Partner,
			WeeklyGoal: row.WeeklyGoal,
		})
	}
	if err := i.store.ReplaceRules(ctx, rules); err != nil {
		return 0, err
	}

	i.logger.Info("rule sheet imported",
		slog.String("file", filepath.Base(filename)), slog.Int("rules", len(rules)))
	return len(rules), nil
}

// acquireLock serializes the cross-batch duplicate check and insert across
// concurrent imports.
func (i *Importer) acquireLock(ctx context.Context) (func(), error) {
	lock := flock.New(i.cfg.ImportLockPath())
	lockCtx, cancel := context.WithTimeout(ctx, time.Duration(i.cfg.Import.LockTimeoutSeconds)*time.Second)
	defer cancel()

	ok, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrImportBusy
		}
		return nil, fmt.Errorf("acquire import lock: %w", err)
	}
	if !ok {
		return nil, ErrImportBusy
	}
	return func() { _ = lock.Unlock() }, nil
}

// excludeExisting drops events whose signature is already persisted within
// the batch's date span.
func (i *Importer) excludeExisting(ctx context.Context, events []timecard.Event) ([]timecard.Event, int, error) {
	from, to := events[0].At, events[0].At
	for _, event := range events[1:] {
		if event.At.Before(from) {
			from = event.At
		}
		if event.At.After(to) {
			to = event.At
		}
	}

	existing, err := i.store.Signatures(ctx, from, to)
	if err != nil {
		return nil, 0, fmt.Errorf("query existing signatures: %w", err)
	}

	fresh := make([]timecard.Event, 0, len(events))
	for _, event := range events {
		if _, ok := existing[event.Signature()]; ok {
			continue
		}
		fresh = append(fresh, event)
	}
	return fresh, len(events) - len(fresh), nil
}
