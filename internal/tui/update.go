package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lwaidler/tourneyclock/internal/config"
	"github.com/lwaidler/tourneyclock/internal/countdown"
	"github.com/lwaidler/tourneyclock/internal/models"
	"github.com/lwaidler/tourneyclock/internal/schedule"
	"github.com/lwaidler/tourneyclock/internal/util"
)

func (m DisplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case reportMsg:
		if msg.err != nil {
			m.message = fmt.Sprintf("Export failed: %v", msg.err)
		} else {
			m.message = "Report saved to " + msg.path
		}
		return m, nil
	case tea.KeyMsg:
		if m.modal != nil {
			return m.handleModalKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m DisplayModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.TargetBarWidth
		if m.width < config.CompactModeThreshold {
			target = m.width * 2 / 3
		}
		m.bar.Width = util.Clamp(target, config.MinBarWidth, m.width-4)
	}
	return m, nil
}

func (m DisplayModel) handleTick(msg TickMsg) (DisplayModel, tea.Cmd) {
	now := time.Time(msg)
	cfg := m.store.Current()

	m.clock = formatClock(now)
	m.currentItemID, _ = schedule.CurrentItemID(cfg.ScheduleItems, now)

	wasActive := m.engine.Active()
	m.engine.Tick(now)
	m.percent = m.engine.ProgressPercent(cfg.Limit(), now)
	if wasActive && !m.engine.Active() {
		m.finishRun(models.OutcomeExpired, now)
	}
	return m, tickCmd()
}

func (m DisplayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Transient status clears on any keypress.
	m.message = ""

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "enter", "s":
		cfg := m.store.Current()
		modal := newSettingsModal(cfg, m.engine.Active())
		m.modal = &modal
		return m, nil
	case "r":
		m = m.resetCountdown(m.now())
		return m, nil
	case "e":
		m.message = "Exporting report..."
		return m, exportReportCmd(m.ctx, m.db, m.store.Current(), m.now())
	case "h":
		cfg := m.store.Current()
		m.store.SetHeaderVisible(!cfg.HeaderVisible)
		return m, nil
	case "b":
		cfg := m.store.Current()
		m.store.SetScheduleVisible(!cfg.ScheduleVisible)
		return m, nil
	case "t":
		next := nextThemeName(m.store.Current().Theme)
		m.store.SetTheme(next)
		m.theme = themeByName(next)
		return m, nil
	}
	return m, nil
}

// startCountdown activates the engine for spec, records the run and stores
// the prefill. The returned model carries any rejection in its status line.
func (m DisplayModel) startCountdown(spec countdown.StartSpec, now time.Time) DisplayModel {
	wasActive := m.engine.Active()
	if err := m.engine.Start(spec, now); err != nil {
		m.message = fmt.Sprintf("Not started: %v", err)
		return m
	}
	// Superseding a running countdown closes its history row, but only once
	// the new start is accepted: a rejected start leaves the old countdown
	// running and its row must stay open for natural expiry to close.
	if wasActive {
		m.finishRun(models.OutcomeReset, now)
	}
	cfg := m.store.Current()
	target, _ := m.engine.Target()
	id, err := m.db.AddRun(m.ctx, models.CountdownRun{
		Mode:      countdown.Mode(spec),
		Phase:     schedule.PhaseLabel(cfg.ScheduleItems, cfg.CurrentGame),
		StartedAt: now,
		TargetAt:  target,
	})
	if err != nil {
		util.LogError("record countdown start", err)
	} else {
		m.runID = id
	}
	m.percent = m.engine.ProgressPercent(cfg.Limit(), now)
	return m
}

func (m DisplayModel) resetCountdown(now time.Time) DisplayModel {
	m.engine.Reset()
	m.percent = 0
	m.finishRun(models.OutcomeReset, now)
	return m
}

// finishRun closes the open history row, if any.
func (m *DisplayModel) finishRun(outcome models.RunOutcome, now time.Time) {
	if m.runID == 0 {
		return
	}
	util.LogError("record countdown end", m.db.FinishRun(m.ctx, m.runID, outcome, now))
	m.runID = 0
}
