// Package schedule maps wall-clock time onto the event day's named intervals.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lwaidler/tourneyclock/internal/models"
)

var ErrBadClock = errors.New("not an HH:MM clock value")

// ParseClock converts a 24-hour "HH:MM" string to minutes since midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	return h*60 + m, nil
}

// MinutesOfDay returns t's wall-clock position in minutes since midnight.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// CurrentItemID returns the id of the first item whose [start, end) window
// contains now. Overlapping items resolve by list order. Items with
// unparseable bounds, or with end <= start, never match; windows do not span
// midnight.
func CurrentItemID(items []models.ScheduleItem, now time.Time) (string, bool) {
	nowMin := MinutesOfDay(now)
	for _, item := range items {
		start, err := ParseClock(item.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseClock(item.EndTime)
		if err != nil {
			continue
		}
		if nowMin >= start && nowMin < end {
			return item.ID, true
		}
	}
	return "", false
}

// PhaseLabel returns the label selected by the 1-based game index, or "" when
// the index falls outside the schedule. This is the manual phase selector; it
// is independent of the time-based resolver and need not agree with it.
func PhaseLabel(items []models.ScheduleItem, currentGame int) string {
	idx := currentGame - 1
	if idx < 0 || idx >= len(items) {
		return ""
	}
	return items[idx].Label
}

// NewItem creates a schedule item with a fresh stable id.
func NewItem(label, startTime, endTime string) models.ScheduleItem {
	return models.ScheduleItem{
		ID:        uuid.NewString(),
		Label:     label,
		StartTime: startTime,
		EndTime:   endTime,
	}
}
