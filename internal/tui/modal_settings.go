package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lwaidler/tourneyclock/internal/config"
	"github.com/lwaidler/tourneyclock/internal/countdown"
	"github.com/lwaidler/tourneyclock/internal/models"
	"github.com/lwaidler/tourneyclock/internal/schedule"
)

// modalField identifies one focusable row of the settings modal.
type modalField int

const (
	fieldPhase modalField = iota
	fieldMode
	fieldHours
	fieldMinutes
	fieldTarget
	fieldLimitEnabled
	fieldLimitHours
	fieldLimitMinutes
	fieldName
	fieldHeaderVisible
	fieldScheduleVisible
	fieldPhaseLabel
	fieldPhaseStart
	fieldPhaseEnd
	fieldAddPhase
	fieldRemovePhase
	fieldStart
	fieldReset
	fieldCount // sentinel
)

// settingsModal edits a working copy of the settings document. Edits commit
// to the store when the modal closes (esc) or a countdown starts.
type settingsModal struct {
	focus modalField

	phase int // 1-based manual phase selector
	mode  string
	items []models.ScheduleItem

	hoursInput   textinput.Model
	minutesInput textinput.Model
	targetInput  textinput.Model

	limitEnabled      bool
	limitHoursInput   textinput.Model
	limitMinutesInput textinput.Model

	nameInput       textinput.Model
	headerVisible   bool
	scheduleVisible bool

	labelInput textinput.Model
	startInput textinput.Model
	endInput   textinput.Model

	countdownActive bool
	status          string
}

func newNumberInput(value int) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 2
	ti.Width = 4
	ti.SetValue(strconv.Itoa(value))
	return ti
}

func newClockInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "HH:MM"
	ti.CharLimit = 5
	ti.Width = 7
	ti.SetValue(value)
	return ti
}

func newSettingsModal(cfg models.Settings, countdownActive bool) settingsModal {
	name := textinput.New()
	name.CharLimit = config.MaxNameLength
	name.Width = 30
	name.SetValue(cfg.TournamentName)

	label := textinput.New()
	label.CharLimit = config.MaxLabelLength
	label.Width = 20

	sm := settingsModal{
		focus:             fieldPhase,
		phase:             cfg.CurrentGame,
		mode:              cfg.CountdownMode,
		items:             append([]models.ScheduleItem(nil), cfg.ScheduleItems...),
		hoursInput:        newNumberInput(cfg.CountdownHours),
		minutesInput:      newNumberInput(cfg.CountdownMinutes),
		targetInput:       newClockInput(cfg.CountdownTargetTime),
		limitEnabled:      cfg.ProgressBarLimitEnabled,
		limitHoursInput:   newNumberInput(cfg.ProgressBarLimitHours),
		limitMinutesInput: newNumberInput(cfg.ProgressBarLimitMinutes),
		nameInput:         name,
		headerVisible:     cfg.HeaderVisible,
		scheduleVisible:   cfg.ScheduleVisible,
		labelInput:        label,
		startInput:        newClockInput(""),
		endInput:          newClockInput(""),
		countdownActive:   countdownActive,
	}
	sm.loadSelectedItem()
	return sm
}

// loadSelectedItem mirrors the selected schedule item into the edit inputs.
func (sm *settingsModal) loadSelectedItem() {
	idx := sm.phase - 1
	if idx < 0 || idx >= len(sm.items) {
		sm.labelInput.SetValue("")
		sm.startInput.SetValue("")
		sm.endInput.SetValue("")
		return
	}
	sm.labelInput.SetValue(sm.items[idx].Label)
	sm.startInput.SetValue(sm.items[idx].StartTime)
	sm.endInput.SetValue(sm.items[idx].EndTime)
}

// storeSelectedItem writes the edit inputs back into the working copy.
func (sm *settingsModal) storeSelectedItem() {
	idx := sm.phase - 1
	if idx < 0 || idx >= len(sm.items) {
		return
	}
	sm.items[idx].Label = strings.TrimSpace(sm.labelInput.Value())
	sm.items[idx].StartTime = strings.TrimSpace(sm.startInput.Value())
	sm.items[idx].EndTime = strings.TrimSpace(sm.endInput.Value())
}

func (sm *settingsModal) activeInput() *textinput.Model {
	switch sm.focus {
	case fieldHours:
		return &sm.hoursInput
	case fieldMinutes:
		return &sm.minutesInput
	case fieldTarget:
		return &sm.targetInput
	case fieldLimitHours:
		return &sm.limitHoursInput
	case fieldLimitMinutes:
		return &sm.limitMinutesInput
	case fieldName:
		return &sm.nameInput
	case fieldPhaseLabel:
		return &sm.labelInput
	case fieldPhaseStart:
		return &sm.startInput
	case fieldPhaseEnd:
		return &sm.endInput
	}
	return nil
}

func (sm *settingsModal) setFocus(f modalField) {
	if in := sm.activeInput(); in != nil {
		in.Blur()
	}
	sm.focus = f
	if in := sm.activeInput(); in != nil {
		in.Focus()
	}
}

// skippedField reports fields hidden under the current mode.
func (sm *settingsModal) skippedField(f modalField) bool {
	switch f {
	case fieldHours, fieldMinutes:
		return sm.mode != config.ModeDuration
	case fieldTarget:
		return sm.mode != config.ModeTarget
	case fieldLimitHours, fieldLimitMinutes:
		return !sm.limitEnabled
	}
	return false
}

func (sm *settingsModal) focusNext() {
	f := sm.focus
	for {
		f = (f + 1) % fieldCount
		if !sm.skippedField(f) {
			break
		}
	}
	sm.setFocus(f)
}

func (sm *settingsModal) focusPrev() {
	f := sm.focus
	for {
		f = (f - 1 + fieldCount) % fieldCount
		if !sm.skippedField(f) {
			break
		}
	}
	sm.setFocus(f)
}

// cycle adjusts the focused selector/toggle by delta.
func (sm *settingsModal) cycle(delta int) {
	switch sm.focus {
	case fieldPhase:
		if len(sm.items) == 0 {
			return
		}
		sm.storeSelectedItem()
		sm.phase += delta
		if sm.phase < 1 {
			sm.phase = len(sm.items)
		}
		if sm.phase > len(sm.items) {
			sm.phase = 1
		}
		sm.loadSelectedItem()
	case fieldMode:
		if sm.mode == config.ModeDuration {
			sm.mode = config.ModeTarget
		} else {
			sm.mode = config.ModeDuration
		}
	case fieldLimitEnabled:
		sm.limitEnabled = !sm.limitEnabled
	case fieldHeaderVisible:
		sm.headerVisible = !sm.headerVisible
	case fieldScheduleVisible:
		sm.scheduleVisible = !sm.scheduleVisible
	}
}

func (sm *settingsModal) addPhase() {
	sm.storeSelectedItem()
	start := "00:00"
	if len(sm.items) > 0 {
		start = sm.items[len(sm.items)-1].EndTime
	}
	sm.items = append(sm.items, schedule.NewItem("NEW PHASE", start, "23:59"))
	sm.phase = len(sm.items)
	sm.loadSelectedItem()
	sm.status = "Phase added"
}

func (sm *settingsModal) removePhase() {
	if len(sm.items) == 0 {
		return
	}
	sm.items = sm.items[:len(sm.items)-1]
	if sm.phase > len(sm.items) {
		sm.phase = len(sm.items)
	}
	sm.loadSelectedItem()
	sm.status = "Last phase removed"
}

// parseField reads a bounded integer out of a text input.
func parseField(in textinput.Model, name string, max int) (int, error) {
	v := strings.TrimSpace(in.Value())
	if v == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	if n < 0 || n > max {
		return 0, fmt.Errorf("%s must be between 0 and %d", name, max)
	}
	return n, nil
}

// buildSpec assembles the start spec for the selected mode.
func (sm *settingsModal) buildSpec() (countdown.StartSpec, error) {
	if sm.mode == config.ModeTarget {
		tod := strings.TrimSpace(sm.targetInput.Value())
		if _, err := schedule.ParseClock(tod); err != nil {
			return nil, err
		}
		return countdown.TargetSpec{TimeOfDay: tod}, nil
	}
	hours, err := parseField(sm.hoursInput, "hours", 23)
	if err != nil {
		return nil, err
	}
	minutes, err := parseField(sm.minutesInput, "minutes", 59)
	if err != nil {
		return nil, err
	}
	return countdown.DurationSpec{Hours: hours, Minutes: minutes}, nil
}

// limit assembles the progress-bar limit from the inputs; broken numbers
// fall back to the defaults rather than blocking a start.
func (sm *settingsModal) limit() models.ProgressLimit {
	hours, err := parseField(sm.limitHoursInput, "limit hours", 99)
	if err != nil {
		hours = config.DefaultLimitHours
	}
	minutes, err := parseField(sm.limitMinutesInput, "limit minutes", 59)
	if err != nil {
		minutes = config.DefaultLimitMinutes
	}
	return models.ProgressLimit{Enabled: sm.limitEnabled, Hours: hours, Minutes: minutes}
}

// commit writes the working copy through the store's typed setters.
func (sm *settingsModal) commit(m *DisplayModel) {
	sm.storeSelectedItem()
	m.store.SetTournamentName(strings.TrimSpace(sm.nameInput.Value()))
	m.store.SetHeaderVisible(sm.headerVisible)
	m.store.SetScheduleVisible(sm.scheduleVisible)
	m.store.SetCurrentGame(sm.phase)
	m.store.SetScheduleItems(sm.items)
	m.store.SetProgressLimit(sm.limit())

	hours, err1 := parseField(sm.hoursInput, "hours", 23)
	minutes, err2 := parseField(sm.minutesInput, "minutes", 59)
	if err1 == nil && err2 == nil {
		m.store.SetCountdownPrefill(sm.mode, hours, minutes, strings.TrimSpace(sm.targetInput.Value()))
	}
}

func (m DisplayModel) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sm := m.modal

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		sm.commit(&m)
		m.modal = nil
		return m, nil
	case "tab", "down":
		sm.focusNext()
		return m, nil
	case "shift+tab", "up":
		sm.focusPrev()
		return m, nil
	case "left":
		sm.cycle(-1)
		return m, nil
	case "right":
		sm.cycle(1)
		return m, nil
	case " ":
		if sm.activeInput() == nil {
			sm.cycle(1)
			return m, nil
		}
	case "enter":
		switch sm.focus {
		case fieldAddPhase:
			sm.addPhase()
			return m, nil
		case fieldRemovePhase:
			sm.removePhase()
			return m, nil
		case fieldReset:
			sm.commit(&m)
			m.modal = nil
			m = m.resetCountdown(m.now())
			return m, nil
		default:
			// Enter anywhere else starts the countdown.
			spec, err := sm.buildSpec()
			if err != nil {
				sm.status = err.Error()
				return m, nil
			}
			sm.commit(&m)
			m.modal = nil
			m = m.startCountdown(spec, m.now())
			return m, nil
		}
	}

	if in := sm.activeInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}
