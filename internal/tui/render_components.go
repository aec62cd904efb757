package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lwaidler/tourneyclock/internal/config"
	"github.com/lwaidler/tourneyclock/internal/models"
	"github.com/lwaidler/tourneyclock/internal/schedule"
)

func (m DisplayModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.modal != nil {
		return m.renderModal()
	}

	cfg := m.store.Current()
	var sections []string

	if cfg.HeaderVisible {
		sections = append(sections, m.renderHeader(cfg.TournamentName))
	}
	sections = append(sections, m.renderCountdown(schedule.PhaseLabel(cfg.ScheduleItems, cfg.CurrentGame)))
	if cfg.ScheduleVisible {
		sections = append(sections, m.renderScheduleStrip(cfg))
	}
	sections = append(sections, m.renderStatusLine())

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m DisplayModel) renderHeader(name string) string {
	name = ansi.Truncate(name, m.width-4, config.TruncationSuffix)
	return m.theme.Header.Render(name)
}

func (m DisplayModel) renderCountdown(phase string) string {
	caption := countdownCaption(phase, m.engine.Active(), m.engine.Expired())

	display := m.engine.Remaining()
	if display == "" {
		display = "--:--:--"
	}
	var digits string
	if m.width < config.CompactModeThreshold {
		digits = m.theme.Digits.Render(display)
	} else {
		digits = m.theme.Digits.Render(BigText(display))
	}

	parts := []string{
		m.theme.Caption.Render(caption),
		"",
		digits,
	}
	if m.engine.Active() {
		parts = append(parts, "", m.bar.ViewAs(m.percent/100))
	} else if m.engine.Expired() {
		parts = append(parts, "", m.bar.ViewAs(0))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// renderScheduleStrip draws one box per schedule item, highlighting the one
// the wall clock currently falls inside.
func (m DisplayModel) renderScheduleStrip(cfg models.Settings) string {
	if len(cfg.ScheduleItems) == 0 {
		return ""
	}
	maxCell := m.width/len(cfg.ScheduleItems) - 3
	if maxCell < 6 {
		maxCell = 6
	}
	cells := make([]string, 0, len(cfg.ScheduleItems))
	for _, item := range cfg.ScheduleItems {
		label := ansi.Truncate(item.Label, maxCell, config.TruncationSuffix)
		cell := label + "\n" + item.StartTime + "-" + item.EndTime
		if item.ID == m.currentItemID {
			cells = append(cells, m.theme.StripCurrent.Render(cell))
		} else {
			cells = append(cells, m.theme.StripIdle.Render(cell))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, insertGaps(cells)...)
}

// insertGaps separates strip cells with a single space.
func insertGaps(cells []string) []string {
	out := make([]string, 0, len(cells)*2)
	for i, c := range cells {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, c)
	}
	return out
}

func (m DisplayModel) renderStatusLine() string {
	// A transient message takes the hints' place so truncation never eats it.
	line := m.theme.Clock.Render(m.clock)
	if m.message != "" {
		line += "  " + m.theme.Message.Render(m.message)
	} else {
		hints := "ENTER settings · r reset · h header · b schedule · t theme · e report · q quit"
		line += m.theme.Dim.Render("  " + hints)
	}
	return ansi.Truncate(line, m.width, config.TruncationSuffix)
}

// modalRow renders one label/value pair, marking the focused one.
func (m DisplayModel) modalRow(f modalField, label, value string) string {
	sm := m.modal
	marker := "  "
	style := m.theme.Label
	if sm.focus == f {
		marker = "> "
		style = m.theme.Focused
	}
	return marker + style.Render(fmt.Sprintf("%-18s", label)) + value
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m DisplayModel) renderModal() string {
	sm := m.modal

	phaseValue := "(no phases)"
	if len(sm.items) > 0 {
		phaseValue = fmt.Sprintf("%d/%d", sm.phase, len(sm.items))
	}

	rows := []string{
		m.theme.Focused.Render("SETTINGS"),
		"",
		m.modalRow(fieldPhase, "Phase", "< "+phaseValue+" >"),
		m.modalRow(fieldMode, "Mode", "< "+sm.mode+" >"),
	}
	if sm.mode == config.ModeDuration {
		rows = append(rows,
			m.modalRow(fieldHours, "Hours", sm.hoursInput.View()),
			m.modalRow(fieldMinutes, "Minutes", sm.minutesInput.View()),
		)
	} else {
		rows = append(rows, m.modalRow(fieldTarget, "Target time", sm.targetInput.View()))
	}
	rows = append(rows, m.modalRow(fieldLimitEnabled, "Bar limit", onOff(sm.limitEnabled)))
	if sm.limitEnabled {
		rows = append(rows,
			m.modalRow(fieldLimitHours, "Limit hours", sm.limitHoursInput.View()),
			m.modalRow(fieldLimitMinutes, "Limit minutes", sm.limitMinutesInput.View()),
		)
	}
	rows = append(rows,
		"",
		m.modalRow(fieldName, "Tournament", sm.nameInput.View()),
		m.modalRow(fieldHeaderVisible, "Header", onOff(sm.headerVisible)),
		m.modalRow(fieldScheduleVisible, "Schedule", onOff(sm.scheduleVisible)),
		"",
		m.modalRow(fieldPhaseLabel, "Phase label", sm.labelInput.View()),
		m.modalRow(fieldPhaseStart, "Phase start", sm.startInput.View()),
		m.modalRow(fieldPhaseEnd, "Phase end", sm.endInput.View()),
		"",
	)

	buttons := []string{
		m.modalButton(fieldAddPhase, "Add phase"),
		m.modalButton(fieldRemovePhase, "Remove phase"),
		m.modalButton(fieldStart, "Start"),
		m.modalButton(fieldReset, "Reset"),
	}
	rows = append(rows, strings.Join(buttons, " "))

	if sm.status != "" {
		rows = append(rows, "", m.theme.Message.Render(sm.status))
	}
	rows = append(rows, "", m.theme.Dim.Render("tab/↑↓ move · ←→ change · enter start · esc save & close"))

	box := m.theme.ModalBox.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m DisplayModel) modalButton(f modalField, label string) string {
	if m.modal.focus == f {
		return m.theme.ButtonHot.Render(label)
	}
	return m.theme.ButtonIdle.Render(label)
}
