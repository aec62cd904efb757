package config

import "time"

// Timer cadence and windows.
const (
	// TickInterval drives the countdown, the wall clock and the schedule
	// highlight. Every tick re-derives state from the fixed target and a
	// fresh clock reading, so a delayed tick self-heals.
	TickInterval = time.Second

	// SaveDebounce batches rapid settings edits into one durable write.
	SaveDebounce = 100 * time.Millisecond

	// ExpiryMessageAfter is how long the frozen 00:00:00 readout and the
	// "phase has ended" caption stay up after a countdown runs out.
	ExpiryMessageAfter = 5 * time.Minute
)

// Countdown modes.
const (
	ModeDuration = "duration"
	ModeTarget   = "target"
)

// Application/storage settings.
const (
	AppName     = "tourneyclock"
	DBFileName  = "display.db"
	SettingsKey = "countdown_display_settings"
)

// Countdown and progress-bar defaults.
const (
	DefaultCountdownMode    = ModeDuration
	DefaultCountdownHours   = 3
	DefaultCountdownMinutes = 0
	DefaultTargetTime       = "12:30"

	DefaultLimitEnabled = true
	DefaultLimitHours   = 3
	DefaultLimitMinutes = 0
)

// Display defaults.
const (
	DefaultTournamentName  = "WAIDLER TOURNAMENT"
	DefaultHeaderVisible   = true
	DefaultScheduleVisible = true
	DefaultCurrentGame     = 1
	DefaultTheme           = "default"
)
