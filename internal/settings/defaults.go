package settings

import (
	"github.com/lwaidler/tourneyclock/internal/config"
	"github.com/lwaidler/tourneyclock/internal/models"
)

// Defaults returns the hard-coded settings document: a five-phase day
// schedule and a 3-hour duration countdown with a 3-hour progress ceiling.
func Defaults() models.Settings {
	return models.Settings{
		TournamentName:  config.DefaultTournamentName,
		HeaderVisible:   config.DefaultHeaderVisible,
		CurrentGame:     config.DefaultCurrentGame,
		ScheduleVisible: config.DefaultScheduleVisible,
		ScheduleItems: []models.ScheduleItem{
			{ID: "item-1", Label: "GAME 1", StartTime: "09:30", EndTime: "12:45"},
			{ID: "item-2", Label: "LUNCH BREAK", StartTime: "12:45", EndTime: "13:45"},
			{ID: "item-3", Label: "GAME 2", StartTime: "13:45", EndTime: "17:00"},
			{ID: "item-4", Label: "GAME 3", StartTime: "17:05", EndTime: "20:20"},
			{ID: "item-5", Label: "AWARD CEREMONY", StartTime: "20:30", EndTime: "23:59"},
		},

		CountdownMode:       config.DefaultCountdownMode,
		CountdownHours:      config.DefaultCountdownHours,
		CountdownMinutes:    config.DefaultCountdownMinutes,
		CountdownTargetTime: config.DefaultTargetTime,

		ProgressBarLimitEnabled: config.DefaultLimitEnabled,
		ProgressBarLimitHours:   config.DefaultLimitHours,
		ProgressBarLimitMinutes: config.DefaultLimitMinutes,

		Theme: config.DefaultTheme,
	}
}
