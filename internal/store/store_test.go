package store_test

import (
	"context"
	"testing"
	"time"

	"timecard/internal/store"
	"timecard/internal/testsupport"
	"timecard/internal/timecard"
)

func localTime(t *testing.T, value string) time.Time {
	t.Helper()
	at, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.Local)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return at
}

func TestInsertAndQueryRange(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	events := []timecard.Event{
		{Employee: "Ana Lima", At: localTime(t, "2026-03-02 08:00:00"), Source: "folha.xlsx"},
		{Employee: "Ana Lima", At: localTime(t, "2026-03-02 18:00:00"), Source: "folha.xlsx"},
		{Employee: "Bruno Costa", At: localTime(t, "2026-04-01 09:00:00"), Source: "folha.xlsx"},
	}
	inserted, err := st.InsertPunches(ctx, "batch-1", events, 2)
	if err != nil {
		t.Fatalf("InsertPunches failed: %v", err)
	}
	if inserted != 3 {
		t.Fatalf("expected 3 inserted, got %d", inserted)
	}

	march, err := st.PunchesBetween(ctx,
		localTime(t, "2026-03-01 00:00:00"), localTime(t, "2026-03-31 23:59:59"))
	if err != nil {
		t.Fatalf("PunchesBetween failed: %v", err)
	}
	if len(march) != 2 {
		t.Fatalf("expected 2 punches in March, got %d", len(march))
	}
	if !march[0].At.Before(march[1].At) {
		t.Fatal("expected chronological order")
	}
	if march[0].Employee != "Ana Lima" || march[0].Source != "folha.xlsx" {
		t.Fatalf("unexpected first punch: %+v", march[0])
	}
}

func TestPunchTimesRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	at := localTime(t, "2026-03-02 08:15:30")
	if _, err := st.InsertPunches(ctx, "", []timecard.Event{{Employee: "Ana", At: at}}, 10); err != nil {
		t.Fatalf("InsertPunches failed: %v", err)
	}
	got, err := st.PunchesBetween(ctx, at.Add(-time.Hour), at.Add(time.Hour))
	if err != nil {
		t.Fatalf("PunchesBetween failed: %v", err)
	}
	if len(got) != 1 || !got[0].At.Equal(at) {
		t.Fatalf("timestamp did not round-trip: %+v", got)
	}
}

func TestSignaturesCoverSpan(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	event := timecard.Event{Employee: "Ana Lima", At: localTime(t, "2026-03-02 08:00:00")}
	if _, err := st.InsertPunches(ctx, "", []timecard.Event{event}, 10); err != nil {
		t.Fatalf("InsertPunches failed: %v", err)
	}

	signatures, err := st.Signatures(ctx,
		localTime(t, "2026-03-01 00:00:00"), localTime(t, "2026-03-31 23:59:59"))
	if err != nil {
		t.Fatalf("Signatures failed: %v", err)
	}
	if _, ok := signatures[event.Signature()]; !ok {
		t.Fatalf("expected signature %q in %v", event.Signature(), signatures)
	}

	// A variant of the same punch with different casing must match too.
	variant := timecard.Event{Employee: "ANA  LIMA", At: event.At}
	if _, ok := signatures[variant.Signature()]; !ok {
		t.Fatal("expected signatures to match on normalized key")
	}
}

func TestLatestPunch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, ok, err := st.LatestPunch(ctx); err != nil || ok {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}

	events := []timecard.Event{
		{Employee: "Ana", At: localTime(t, "2026-03-02 08:00:00")},
		{Employee: "Ana", At: localTime(t, "2026-03-05 18:00:00")},
	}
	if _, err := st.InsertPunches(ctx, "", events, 10); err != nil {
		t.Fatalf("InsertPunches failed: %v", err)
	}

	latest, ok, err := st.LatestPunch(ctx)
	if err != nil || !ok {
		t.Fatalf("LatestPunch failed: ok=%v err=%v", ok, err)
	}
	if !latest.Equal(events[1].At) {
		t.Fatalf("expected latest %v, got %v", events[1].At, latest)
	}
}

func TestClearPunches(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := st.InsertPunches(ctx, "", []timecard.Event{
		{Employee: "Ana", At: localTime(t, "2026-03-02 08:00:00")},
	}, 10); err != nil {
		t.Fatalf("InsertPunches failed: %v", err)
	}
	removed, err := st.ClearPunches(ctx)
	if err != nil {
		t.Fatalf("ClearPunches failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
}

func TestRulesUpsertAndRemove(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := st.SetRule(ctx, "Ana Lima", "Carlos Prado", 4); err != nil {
		t.Fatalf("SetRule failed: %v", err)
	}
	// Upsert by normalized key: different casing updates the same row.
	if err := st.SetRule(ctx, "ANA  LIMA", "Paula Reis", 2); err != nil {
		t.Fatalf("SetRule update failed: %v", err)
	}

	rules, err := st.Rules(ctx)
	if err != nil {
		t.Fatalf("Rules failed: %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule after upsert, got %d", len(rules))
	}
	if rules[0].Partner != "Paula Reis" || rules[0].WeeklyGoal != 2 {
		t.Fatalf("unexpected rule: %+v", rules[0])
	}

	removed, err := st.RemoveRule(ctx, "ana lima")
	if err != nil {
		t.Fatalf("RemoveRule failed: %v", err)
	}
	if !removed {
		t.Fatal("expected rule removed")
	}
	if removed, _ := st.RemoveRule(ctx, "nobody"); removed {
		t.Fatal("expected no match for unknown employee")
	}
}

func TestReplaceRules(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := st.SetRule(ctx, "Old Rule", "Gone Partner", 3); err != nil {
		t.Fatalf("SetRule failed: %v", err)
	}
	err := st.ReplaceRules(ctx, []store.PartnerRule{
		{Employee: "Ana Lima", Partner: "Carlos Prado", WeeklyGoal: 4},
		{Employee: "Bruno Costa", Partner: "Paula Reis", WeeklyGoal: 3},
	})
	if err != nil {
		t.Fatalf("ReplaceRules failed: %v", err)
	}

	rules, err := st.Rules(ctx)
	if err != nil {
		t.Fatalf("Rules failed: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected replacement set of 2, got %d", len(rules))
	}
	if rules[0].Employee != "Ana Lima" {
		t.Fatalf("expected rules ordered by name, got %+v", rules)
	}
}

func TestCheckHealth(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := st.InsertPunches(ctx, "", []timecard.Event{
		{Employee: "Ana", At: localTime(t, "2026-03-02 08:00:00")},
	}, 10); err != nil {
		t.Fatalf("InsertPunches failed: %v", err)
	}

	health, err := st.CheckHealth(ctx)
	if err != nil {
		t.Fatalf("CheckHealth failed: %v", err)
	}
	if !health.DatabaseExists || !health.IntegrityOK {
		t.Fatalf("unexpected health: %+v", health)
	}
	if health.PunchCount != 1 {
		t.Fatalf("expected 1 punch, got %d", health.PunchCount)
	}
}
