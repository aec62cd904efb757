// Package tui renders the kiosk: a large countdown readout with a progress
// bar, the day schedule along the bottom, and a settings modal.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lwaidler/tourneyclock/internal/config"
	"github.com/lwaidler/tourneyclock/internal/countdown"
	"github.com/lwaidler/tourneyclock/internal/database"
	"github.com/lwaidler/tourneyclock/internal/settings"
)

// DisplayModel is the root bubbletea model.
type DisplayModel struct {
	ctx    context.Context
	db     database.Repository
	store  *settings.Store
	engine *countdown.Engine
	bar    progress.Model
	theme  Theme
	modal  *settingsModal

	clock         string
	currentItemID string
	percent       float64
	runID         int64 // open history row, 0 when none

	message       string
	width, height int
}

func NewDisplayModel(ctx context.Context, db database.Repository, store *settings.Store) DisplayModel {
	cfg := store.Current()
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = config.TargetBarWidth
	bar.ShowPercentage = false

	return DisplayModel{
		ctx:    ctx,
		db:     db,
		store:  store,
		engine: countdown.New(),
		bar:    bar,
		theme:  themeByName(cfg.Theme),
	}
}

func (m DisplayModel) Init() tea.Cmd {
	return tickCmd()
}

// Engine exposes the timing engine, e.g. for shutdown bookkeeping.
func (m DisplayModel) Engine() *countdown.Engine { return m.engine }

// now is a tiny indirection so key handlers share one clock source with the
// tick path.
func (m DisplayModel) now() time.Time { return time.Now() }
