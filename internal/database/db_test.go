package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/lwaidler/tourneyclock/internal/models"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpenMigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	db2, err := Open(ctx, db.dbFile)
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	if err := db2.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, ok := db.GetSetting(ctx, "missing"); ok {
		t.Fatalf("expected miss for absent key")
	}
	if err := db.SetSetting(ctx, "doc", `{"a":1}`); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	got, ok := db.GetSetting(ctx, "doc")
	if !ok || got != `{"a":1}` {
		t.Fatalf("GetSetting = %q, %v", got, ok)
	}
	// Last write wins.
	if err := db.SetSetting(ctx, "doc", `{"a":2}`); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	if got, _ := db.GetSetting(ctx, "doc"); got != `{"a":2}` {
		t.Fatalf("GetSetting after overwrite = %q", got)
	}
}

func TestRunLifecycle(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	start := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	id, err := db.AddRun(ctx, models.CountdownRun{
		Mode:      "duration",
		Phase:     "Game 1",
		StartedAt: start,
		TargetAt:  start.Add(3 * time.Hour),
	})
	if err != nil {
		t.Fatalf("AddRun failed: %v", err)
	}
	if id == 0 {
		t.Fatalf("AddRun returned zero id")
	}

	runs, err := db.GetRunsForDay(ctx, start)
	if err != nil {
		t.Fatalf("GetRunsForDay failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Outcome != models.OutcomeRunning {
		t.Fatalf("Outcome = %q, want running", runs[0].Outcome)
	}
	if runs[0].Phase != "Game 1" {
		t.Fatalf("Phase = %q", runs[0].Phase)
	}
	if runs[0].PlannedDuration() != 3*time.Hour {
		t.Fatalf("PlannedDuration = %v", runs[0].PlannedDuration())
	}

	ended := start.Add(3 * time.Hour)
	if err := db.FinishRun(ctx, id, models.OutcomeExpired, ended); err != nil {
		t.Fatalf("FinishRun failed: %v", err)
	}
	runs, err = db.GetRunsForDay(ctx, start)
	if err != nil {
		t.Fatalf("GetRunsForDay failed: %v", err)
	}
	if runs[0].Outcome != models.OutcomeExpired {
		t.Fatalf("Outcome = %q, want expired", runs[0].Outcome)
	}
	if runs[0].EndedAt == nil {
		t.Fatalf("EndedAt not recorded")
	}
}

func TestGetRunsForDayFiltersByDay(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	day1 := time.Date(2025, 6, 14, 22, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	for _, at := range []time.Time{day1, day2} {
		if _, err := db.AddRun(ctx, models.CountdownRun{Mode: "duration", StartedAt: at, TargetAt: at.Add(time.Hour)}); err != nil {
			t.Fatalf("AddRun failed: %v", err)
		}
	}
	runs, err := db.GetRunsForDay(ctx, day1)
	if err != nil {
		t.Fatalf("GetRunsForDay failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs for day1, want 1", len(runs))
	}
}

func TestFinishRunUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.FinishRun(ctx, 9999, models.OutcomeReset, time.Now()); err != nil {
		t.Fatalf("FinishRun on unknown id failed: %v", err)
	}
}
