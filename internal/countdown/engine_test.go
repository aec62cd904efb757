package countdown

import (
	"errors"
	"testing"
	"time"

	"github.com/lwaidler/tourneyclock/internal/config"
	"github.com/lwaidler/tourneyclock/internal/models"
	"github.com/lwaidler/tourneyclock/internal/schedule"
)

var t0 = time.Date(2025, 6, 14, 9, 0, 0, 0, time.Local)

func startDuration(t *testing.T, e *Engine, hours, minutes int, now time.Time) {
	t.Helper()
	if err := e.Start(DurationSpec{Hours: hours, Minutes: minutes}, now); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
}

func TestStartDurationComputesImmediately(t *testing.T) {
	e := New()
	startDuration(t, e, 2, 30, t0)
	if !e.Active() {
		t.Fatalf("expected active after start")
	}
	if got := e.Remaining(); got != "02:30:00" {
		t.Fatalf("Remaining = %q, want 02:30:00 (display computed at start, not next tick)", got)
	}
	if got := e.Duration(); got != 2*time.Hour+30*time.Minute {
		t.Fatalf("Duration = %v, want 2h30m", got)
	}
	target, ok := e.Target()
	if !ok || !target.Equal(t0.Add(2*time.Hour+30*time.Minute)) {
		t.Fatalf("Target = %v ok=%v", target, ok)
	}
}

func TestStartTargetSameDay(t *testing.T) {
	e := New()
	if err := e.Start(TargetSpec{TimeOfDay: "12:30"}, t0); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	target, _ := e.Target()
	want := time.Date(2025, 6, 14, 12, 30, 0, 0, time.Local)
	if !target.Equal(want) {
		t.Fatalf("Target = %v, want %v", target, want)
	}
	if got := e.Remaining(); got != "03:30:00" {
		t.Fatalf("Remaining = %q, want 03:30:00", got)
	}
}

func TestStartTargetRollsToNextDay(t *testing.T) {
	now := time.Date(2025, 6, 14, 23, 0, 0, 0, time.Local)
	e := New()
	if err := e.Start(TargetSpec{TimeOfDay: "00:30"}, now); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	target, _ := e.Target()
	want := time.Date(2025, 6, 15, 0, 30, 0, 0, time.Local)
	if !target.Equal(want) {
		t.Fatalf("Target = %v, want next calendar day %v", target, want)
	}
	if got := e.Duration(); got != 90*time.Minute {
		t.Fatalf("Duration = %v, want 90m", got)
	}
}

func TestStartRejectsInvalidSpecs(t *testing.T) {
	e := New()
	if err := e.Start(nil, t0); !errors.Is(err, ErrNoSpec) {
		t.Fatalf("Start(nil) error = %v, want ErrNoSpec", err)
	}
	if err := e.Start(DurationSpec{}, t0); !errors.Is(err, ErrZeroDuration) {
		t.Fatalf("Start(zero duration) error = %v, want ErrZeroDuration", err)
	}
	if err := e.Start(DurationSpec{Hours: -1, Minutes: 30}, t0); !errors.Is(err, ErrZeroDuration) {
		t.Fatalf("Start(negative span) error = %v, want ErrZeroDuration", err)
	}
	if err := e.Start(TargetSpec{TimeOfDay: "25:99"}, t0); !errors.Is(err, schedule.ErrBadClock) {
		t.Fatalf("Start(bad clock) error = %v, want ErrBadClock", err)
	}
	if err := e.Start(TargetSpec{}, t0); !errors.Is(err, schedule.ErrBadClock) {
		t.Fatalf("Start(empty clock) error = %v, want ErrBadClock", err)
	}
	// A rejected start leaves the engine untouched.
	if e.Active() || e.Remaining() != "" {
		t.Fatalf("rejected start mutated state: active=%v remaining=%q", e.Active(), e.Remaining())
	}
}

func TestTickMonotonicity(t *testing.T) {
	e := New()
	startDuration(t, e, 1, 0, t0)
	target, _ := e.Target()
	prev := target.Sub(t0)
	for _, offset := range []time.Duration{time.Second, time.Minute, 10 * time.Minute, 59 * time.Minute} {
		now := t0.Add(offset)
		e.Tick(now)
		rem := target.Sub(now)
		if rem >= prev {
			t.Fatalf("remaining did not decrease: %v then %v", prev, rem)
		}
		prev = rem
	}
}

func TestTickSelfHealsAfterStall(t *testing.T) {
	// A long gap between ticks (system sleep) must not drift: the display is
	// a pure function of target and now.
	e := New()
	startDuration(t, e, 2, 0, t0)
	e.Tick(t0.Add(90 * time.Minute))
	if got := e.Remaining(); got != "00:30:00" {
		t.Fatalf("Remaining after stall = %q, want 00:30:00", got)
	}
}

func TestTickLongCountdownHoursDoNotWrap(t *testing.T) {
	e := New()
	startDuration(t, e, 30, 0, t0)
	if got := e.Remaining(); got != "30:00:00" {
		t.Fatalf("Remaining = %q, want 30:00:00", got)
	}
}

func TestExpiryIsTerminalAndIdempotent(t *testing.T) {
	e := New()
	startDuration(t, e, 1, 0, t0)
	e.Tick(t0.Add(time.Hour))
	if e.Active() {
		t.Fatalf("expected inactive at target")
	}
	if got := e.Remaining(); got != ZeroDisplay {
		t.Fatalf("Remaining = %q, want %q", got, ZeroDisplay)
	}
	// Later ticks inside the message window change nothing.
	e.Tick(t0.Add(time.Hour + time.Minute))
	e.Tick(t0.Add(time.Hour + 2*time.Minute))
	if e.Active() || e.Remaining() != ZeroDisplay {
		t.Fatalf("expired state mutated: active=%v remaining=%q", e.Active(), e.Remaining())
	}
	if !e.Expired() {
		t.Fatalf("expected expiry message window to be open")
	}
}

func TestExpiryMessageClearsAfterWindow(t *testing.T) {
	e := New()
	startDuration(t, e, 1, 0, t0)
	expiredAt := t0.Add(time.Hour)
	e.Tick(expiredAt)
	e.Tick(expiredAt.Add(config.ExpiryMessageAfter - time.Second))
	if e.Remaining() != ZeroDisplay {
		t.Fatalf("message cleared too early")
	}
	e.Tick(expiredAt.Add(config.ExpiryMessageAfter))
	if got := e.Remaining(); got != "" {
		t.Fatalf("Remaining = %q, want empty after message window", got)
	}
	if e.Expired() {
		t.Fatalf("expected message window closed")
	}
}

func TestStartCancelsExpiryMessage(t *testing.T) {
	e := New()
	startDuration(t, e, 1, 0, t0)
	e.Tick(t0.Add(time.Hour))
	startDuration(t, e, 0, 30, t0.Add(time.Hour+time.Minute))
	if e.Expired() {
		t.Fatalf("new start must cancel the pending expiry message")
	}
	if got := e.Remaining(); got != "00:30:00" {
		t.Fatalf("Remaining = %q, want 00:30:00", got)
	}
}

func TestResetClearsFully(t *testing.T) {
	e := New()
	startDuration(t, e, 1, 0, t0)
	e.Tick(t0.Add(10 * time.Minute))
	e.Reset()
	if e.Active() {
		t.Fatalf("expected inactive after reset")
	}
	if got := e.Remaining(); got != "" {
		t.Fatalf("Remaining = %q, want empty after reset", got)
	}
	if got := e.ProgressPercent(models.ProgressLimit{}, t0); got != 0 {
		t.Fatalf("ProgressPercent = %v, want 0 after reset", got)
	}
	if _, ok := e.Target(); ok {
		t.Fatalf("expected no target after reset")
	}
	// Idempotent.
	e.Reset()
	if e.Active() || e.Remaining() != "" {
		t.Fatalf("second reset changed state")
	}
}

func TestProgressPercentWithoutLimit(t *testing.T) {
	e := New()
	startDuration(t, e, 2, 0, t0)
	none := models.ProgressLimit{}
	if got := e.ProgressPercent(none, t0); got != 100 {
		t.Fatalf("ProgressPercent at start = %v, want 100", got)
	}
	got := e.ProgressPercent(none, t0.Add(time.Hour))
	if got < 49.9 || got > 50.1 {
		t.Fatalf("ProgressPercent at half = %v, want ~50", got)
	}
	if got := e.ProgressPercent(none, t0.Add(2*time.Hour)); got != 0 {
		t.Fatalf("ProgressPercent at target = %v, want 0", got)
	}
	if got := e.ProgressPercent(none, t0.Add(3*time.Hour)); got != 0 {
		t.Fatalf("ProgressPercent past target = %v, want clamp to 0", got)
	}
}

func TestProgressPercentWithLimit(t *testing.T) {
	// 4h countdown against a 3h ceiling: pinned at 100 while remaining
	// exceeds the limit, then linear against the limit span.
	e := New()
	startDuration(t, e, 4, 0, t0)
	limit := models.ProgressLimit{Enabled: true, Hours: 3}
	if got := e.ProgressPercent(limit, t0.Add(30*time.Minute)); got != 100 {
		t.Fatalf("ProgressPercent with 3.5h remaining = %v, want capped 100", got)
	}
	got := e.ProgressPercent(limit, t0.Add(90*time.Minute))
	if got < 83.2 || got > 83.4 {
		t.Fatalf("ProgressPercent with 2.5h remaining = %v, want ~83.3", got)
	}
	if got := e.ProgressPercent(limit, t0.Add(4*time.Hour)); got != 0 {
		t.Fatalf("ProgressPercent at target = %v, want 0", got)
	}
}

func TestProgressPercentZeroLimitSpanFallsBack(t *testing.T) {
	// An enabled limit of 0h0m would divide by zero; it is treated as if the
	// limit were disabled.
	e := New()
	startDuration(t, e, 2, 0, t0)
	zero := models.ProgressLimit{Enabled: true}
	got := e.ProgressPercent(zero, t0.Add(time.Hour))
	if got < 49.9 || got > 50.1 {
		t.Fatalf("ProgressPercent with zero limit = %v, want ~50 (fallback to duration)", got)
	}
}

func TestProgressPercentInactive(t *testing.T) {
	e := New()
	if got := e.ProgressPercent(models.ProgressLimit{Enabled: true, Hours: 3}, t0); got != 0 {
		t.Fatalf("ProgressPercent on idle engine = %v, want 0", got)
	}
}

func TestModeString(t *testing.T) {
	if got := Mode(DurationSpec{Hours: 1}); got != config.ModeDuration {
		t.Fatalf("Mode(DurationSpec) = %q", got)
	}
	if got := Mode(TargetSpec{TimeOfDay: "12:00"}); got != config.ModeTarget {
		t.Fatalf("Mode(TargetSpec) = %q", got)
	}
}

func TestFormatRemaining(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, ZeroDisplay},
		{-time.Second, ZeroDisplay},
		{time.Second, "00:00:01"},
		{61 * time.Second, "00:01:01"},
		{3*time.Hour + 4*time.Minute + 5*time.Second, "03:04:05"},
		{30 * time.Hour, "30:00:00"},
		{1500 * time.Millisecond, "00:00:01"},
	}
	for _, tc := range cases {
		if got := FormatRemaining(tc.d); got != tc.want {
			t.Fatalf("FormatRemaining(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
