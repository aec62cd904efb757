package models

import "time"

// ScheduleItem is one named interval of the event day. StartTime is the
// inclusive lower bound and EndTime the exclusive upper bound, both "HH:MM"
// wall-clock values on the same day.
type ScheduleItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ProgressLimit is the optional fixed reference span for the progress bar.
// When enabled, the bar measures absolute remaining time against this span
// instead of the actual countdown duration.
type ProgressLimit struct {
	Enabled bool
	Hours   int
	Minutes int
}

// Span returns the reference span. Zero when hours and minutes are both zero.
func (l ProgressLimit) Span() time.Duration {
	return time.Duration(l.Hours)*time.Hour + time.Duration(l.Minutes)*time.Minute
}

// Settings is the persisted configuration document. It is stored as a single
// JSON object under one well-known key; unknown or missing fields fall back to
// the hard-coded defaults on load.
type Settings struct {
	TournamentName  string         `json:"tournamentName"`
	HeaderVisible   bool           `json:"headerVisible"`
	CurrentGame     int            `json:"currentGame"` // 1-based index into ScheduleItems
	ScheduleVisible bool           `json:"scheduleVisible"`
	ScheduleItems   []ScheduleItem `json:"scheduleItems"`

	CountdownMode       string `json:"countdownMode"` // "duration" or "target"
	CountdownHours      int    `json:"countdownHours"`
	CountdownMinutes    int    `json:"countdownMinutes"`
	CountdownTargetTime string `json:"countdownTargetTime"`

	ProgressBarLimitEnabled bool `json:"progressBarLimitEnabled"`
	ProgressBarLimitHours   int  `json:"progressBarLimitHours"`
	ProgressBarLimitMinutes int  `json:"progressBarLimitMinutes"`

	Theme string `json:"theme"`
}

// Limit bundles the progress-bar clamp fields.
func (s Settings) Limit() ProgressLimit {
	return ProgressLimit{
		Enabled: s.ProgressBarLimitEnabled,
		Hours:   s.ProgressBarLimitHours,
		Minutes: s.ProgressBarLimitMinutes,
	}
}

// RunOutcome enumerates how a recorded countdown ended.
type RunOutcome string

const (
	OutcomeRunning RunOutcome = "running"
	OutcomeExpired RunOutcome = "expired"
	OutcomeReset   RunOutcome = "reset"
)

// CountdownRun is one recorded countdown, kept for the day report.
type CountdownRun struct {
	ID        int64
	Mode      string
	Phase     string // phase label at start time, may be empty
	StartedAt time.Time
	TargetAt  time.Time
	Outcome   RunOutcome
	EndedAt   *time.Time
}

// PlannedDuration is the span fixed at start time.
func (r CountdownRun) PlannedDuration() time.Duration {
	return r.TargetAt.Sub(r.StartedAt)
}
