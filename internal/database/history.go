package database

import (
	"context"
	"time"

	"github.com/lwaidler/tourneyclock/internal/models"
	"github.com/lwaidler/tourneyclock/internal/util"
)

// AddRun records the start of a countdown and returns the row id.
func (d *Database) AddRun(ctx context.Context, run models.CountdownRun) (int64, error) {
	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO countdown_runs (mode, phase, started_at, target_at, outcome) VALUES (?, ?, ?, ?, ?)",
		run.Mode, run.Phase, run.StartedAt, run.TargetAt, string(models.OutcomeRunning))
	if err != nil {
		return 0, wrapRunErr("add", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapRunErr("add", 0, err)
	}
	return id, nil
}

// FinishRun closes a run with its outcome. Unknown ids are a no-op.
func (d *Database) FinishRun(ctx context.Context, id int64, outcome models.RunOutcome, endedAt time.Time) error {
	_, err := d.DB.ExecContext(ctx,
		"UPDATE countdown_runs SET outcome = ?, ended_at = ? WHERE id = ?",
		string(outcome), endedAt, id)
	return wrapRunErr("finish", id, err)
}

// GetRunsForDay returns the runs started on the given local calendar day,
// oldest first.
func (d *Database) GetRunsForDay(ctx context.Context, day time.Time) ([]models.CountdownRun, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	rows, err := d.DB.QueryContext(ctx,
		"SELECT id, mode, phase, started_at, target_at, outcome, ended_at FROM countdown_runs WHERE started_at >= ? AND started_at < ? ORDER BY started_at",
		dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, wrapRunErr("list", 0, err)
	}
	defer rows.Close()

	var runs []models.CountdownRun
	for rows.Next() {
		var r models.CountdownRun
		var phase *string
		var outcome string
		if err := rows.Scan(&r.ID, &r.Mode, &phase, &r.StartedAt, &r.TargetAt, &outcome, &r.EndedAt); err != nil {
			return nil, wrapRunErr("scan", 0, err)
		}
		r.Phase = util.Deref(phase)
		r.Outcome = models.RunOutcome(outcome)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
