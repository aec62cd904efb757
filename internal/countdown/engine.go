// Package countdown implements the timing engine behind the kiosk display:
// it turns a start command into a live countdown and derives the remaining
// time readout and the progress-bar percentage from the fixed target instant
// and a fresh clock reading.
package countdown

import (
	"errors"
	"fmt"
	"time"

	"github.com/lwaidler/tourneyclock/internal/config"
	"github.com/lwaidler/tourneyclock/internal/models"
	"github.com/lwaidler/tourneyclock/internal/schedule"
)

var (
	ErrNoSpec       = errors.New("no start spec given")
	ErrZeroDuration = errors.New("countdown duration must be positive")
)

// StartSpec selects how the countdown target is derived. It is a closed set:
// DurationSpec or TargetSpec.
type StartSpec interface {
	startSpec()
}

// DurationSpec counts down a fixed span from now.
type DurationSpec struct {
	Hours   int
	Minutes int
}

// TargetSpec counts down to a wall-clock time of day ("HH:MM"). A time of day
// that already passed today rolls forward to the same time tomorrow.
type TargetSpec struct {
	TimeOfDay string
}

func (DurationSpec) startSpec() {}
func (TargetSpec) startSpec()   {}

// Mode returns the persisted mode string for a spec.
func Mode(spec StartSpec) string {
	if _, ok := spec.(TargetSpec); ok {
		return config.ModeTarget
	}
	return config.ModeDuration
}

// Engine holds the countdown state. All operations take the caller's clock
// reading so one now() sample per update pass feeds both the remaining text
// and the progress percent, and so ticks stay idempotent: nothing in here
// decrements a counter.
type Engine struct {
	target    time.Time
	startedAt time.Time
	duration  time.Duration
	active    bool
	remaining string
	expiredAt time.Time // set at natural expiry, cleared by Start/Reset or timeout
}

func New() *Engine {
	return &Engine{}
}

// Start computes the target for spec and activates the countdown. The display
// is computed immediately, not deferred to the next tick. An invalid spec is
// rejected with an error and leaves the engine untouched.
func (e *Engine) Start(spec StartSpec, now time.Time) error {
	var target time.Time
	switch s := spec.(type) {
	case DurationSpec:
		d := time.Duration(s.Hours)*time.Hour + time.Duration(s.Minutes)*time.Minute
		if d <= 0 {
			return fmt.Errorf("%w: %dh%dm", ErrZeroDuration, s.Hours, s.Minutes)
		}
		target = now.Add(d)
	case TargetSpec:
		mins, err := schedule.ParseClock(s.TimeOfDay)
		if err != nil {
			return err
		}
		target = time.Date(now.Year(), now.Month(), now.Day(), mins/60, mins%60, 0, 0, now.Location())
		if target.Before(now) {
			target = target.AddDate(0, 0, 1)
		}
	default:
		return ErrNoSpec
	}

	e.target = target
	e.startedAt = now
	e.duration = target.Sub(now)
	e.active = true
	e.expiredAt = time.Time{}
	e.remaining = FormatRemaining(target.Sub(now))
	return nil
}

// Tick re-derives the display from (target, now). At or past the target the
// display freezes to 00:00:00 and the engine goes inactive; that state then
// clears on its own once the expiry-message window has elapsed. Ticking an
// idle engine is a no-op.
func (e *Engine) Tick(now time.Time) {
	if e.active {
		diff := e.target.Sub(now)
		if diff <= 0 {
			e.remaining = ZeroDisplay
			e.active = false
			e.expiredAt = now
			return
		}
		e.remaining = FormatRemaining(diff)
		return
	}
	if !e.expiredAt.IsZero() && now.Sub(e.expiredAt) >= config.ExpiryMessageAfter {
		e.remaining = ""
		e.expiredAt = time.Time{}
	}
}

// Reset clears all countdown state. Idempotent.
func (e *Engine) Reset() {
	e.target = time.Time{}
	e.startedAt = time.Time{}
	e.duration = 0
	e.active = false
	e.remaining = ""
	e.expiredAt = time.Time{}
}

// ProgressPercent returns the bar fill for now in [0, 100]. With the limit
// enabled the reference span is the configured ceiling rather than the actual
// countdown duration, so a long countdown pins at 100 until remaining time
// drops under the limit. A limit with a zero span behaves as if disabled.
func (e *Engine) ProgressPercent(limit models.ProgressLimit, now time.Time) float64 {
	if !e.active || e.duration <= 0 {
		return 0
	}
	reference := e.duration
	if limit.Enabled {
		if span := limit.Span(); span > 0 {
			reference = span
		}
	}
	percent := float64(e.target.Sub(now)) / float64(reference) * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// Active reports whether a countdown is running.
func (e *Engine) Active() bool { return e.active }

// Remaining returns the last computed display: "HH:MM:SS" while running,
// "00:00:00" during the post-expiry message window, "" otherwise.
func (e *Engine) Remaining() string { return e.remaining }

// Expired reports whether the engine is in the post-expiry message window.
func (e *Engine) Expired() bool { return !e.expiredAt.IsZero() }

// Target returns the countdown target, valid only while a countdown is
// running or showing its expiry message.
func (e *Engine) Target() (time.Time, bool) {
	return e.target, e.active || !e.expiredAt.IsZero()
}

// StartedAt returns the instant the running countdown was started.
func (e *Engine) StartedAt() time.Time { return e.startedAt }

// Duration returns the span fixed at start time.
func (e *Engine) Duration() time.Duration { return e.duration }
