package testutil

import (
	"github.com/lwaidler/tourneyclock/internal/models"
	"github.com/lwaidler/tourneyclock/internal/settings"
)

// ScheduleItemBuilder provides fluent API for creating test schedule items.
type ScheduleItemBuilder struct {
	item models.ScheduleItem
}

func NewScheduleItem() *ScheduleItemBuilder {
	return &ScheduleItemBuilder{
		item: models.ScheduleItem{
			ID:        "test-item",
			Label:     "TEST PHASE",
			StartTime: "09:00",
			EndTime:   "12:00",
		},
	}
}

func (b *ScheduleItemBuilder) WithID(id string) *ScheduleItemBuilder {
	b.item.ID = id
	return b
}

func (b *ScheduleItemBuilder) WithLabel(label string) *ScheduleItemBuilder {
	b.item.Label = label
	return b
}

func (b *ScheduleItemBuilder) WithWindow(start, end string) *ScheduleItemBuilder {
	b.item.StartTime = start
	b.item.EndTime = end
	return b
}

func (b *ScheduleItemBuilder) Build() models.ScheduleItem {
	return b.item
}

// SettingsBuilder provides fluent API for creating test settings documents.
type SettingsBuilder struct {
	cfg models.Settings
}

func NewSettings() *SettingsBuilder {
	return &SettingsBuilder{cfg: settings.Defaults()}
}

func (b *SettingsBuilder) WithTournamentName(name string) *SettingsBuilder {
	b.cfg.TournamentName = name
	return b
}

func (b *SettingsBuilder) WithCurrentGame(n int) *SettingsBuilder {
	b.cfg.CurrentGame = n
	return b
}

func (b *SettingsBuilder) WithScheduleItems(items ...models.ScheduleItem) *SettingsBuilder {
	b.cfg.ScheduleItems = items
	return b
}

func (b *SettingsBuilder) WithLimit(enabled bool, hours, minutes int) *SettingsBuilder {
	b.cfg.ProgressBarLimitEnabled = enabled
	b.cfg.ProgressBarLimitHours = hours
	b.cfg.ProgressBarLimitMinutes = minutes
	return b
}

func (b *SettingsBuilder) WithCountdown(mode string, hours, minutes int, target string) *SettingsBuilder {
	b.cfg.CountdownMode = mode
	b.cfg.CountdownHours = hours
	b.cfg.CountdownMinutes = minutes
	b.cfg.CountdownTargetTime = target
	return b
}

func (b *SettingsBuilder) Build() models.Settings {
	return b.cfg
}
