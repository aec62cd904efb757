package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lwaidler/tourneyclock/internal/config"
	"github.com/lwaidler/tourneyclock/internal/database"
	"github.com/lwaidler/tourneyclock/internal/models"
)

// TickMsg carries the clock reading for one update pass. Everything derived
// during that pass (countdown text, progress percent, schedule highlight,
// wall clock) uses this single timestamp.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// reportMsg is the result of a day-report export.
type reportMsg struct {
	path string
	err  error
}

func exportReportCmd(ctx context.Context, db database.HistoryRepository, cfg models.Settings, day time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := GenerateDayReport(ctx, db, cfg, day)
		return reportMsg{path: path, err: err}
	}
}
