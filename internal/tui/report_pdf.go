package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/lwaidler/tourneyclock/internal/config"
	"github.com/lwaidler/tourneyclock/internal/database"
	"github.com/lwaidler/tourneyclock/internal/models"
	"github.com/lwaidler/tourneyclock/internal/util"
)

// GenerateDayReport writes a PDF summary of the day's schedule and countdown
// runs and returns the output path.
func GenerateDayReport(ctx context.Context, db database.HistoryRepository, cfg models.Settings, day time.Time) (string, error) {
	runs, err := db.GetRunsForDay(ctx, day)
	if err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("%s - %s", cfg.TournamentName, day.Format("2006-01-02")))
	pdf.Ln(14)

	// Schedule
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Schedule")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(cfg.ScheduleItems) == 0 {
		pdf.Cell(0, 8, "  No schedule configured.")
		pdf.Ln(8)
	}
	for _, item := range cfg.ScheduleItems {
		pdf.Cell(0, 8, fmt.Sprintf("  %s - %s  %s", item.StartTime, item.EndTime, item.Label))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	// Countdown runs
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Countdowns")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(runs) == 0 {
		pdf.Cell(0, 8, "  No countdowns recorded.")
		pdf.Ln(8)
	}
	for _, r := range runs {
		line := fmt.Sprintf("  %s  %s (%s, planned %s)",
			r.StartedAt.Format("15:04:05"), r.Phase, r.Mode, formatPlanned(r.PlannedDuration()))
		switch {
		case r.Outcome == models.OutcomeExpired && r.EndedAt != nil:
			line += fmt.Sprintf(" - ran out at %s", r.EndedAt.Format("15:04:05"))
		case r.Outcome == models.OutcomeReset && r.EndedAt != nil:
			line += fmt.Sprintf(" - reset at %s", r.EndedAt.Format("15:04:05"))
		default:
			line += " - still running"
		}
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	dir := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("report-%s.pdf", day.Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}

func formatPlanned(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	return fmt.Sprintf("%dh%02dm", h, m)
}
