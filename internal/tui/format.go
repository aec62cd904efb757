package tui

import "time"

func formatClock(t time.Time) string {
	return t.Format("15:04:05")
}

// countdownCaption describes what the big digits refer to.
func countdownCaption(phase string, active, expired bool) string {
	switch {
	case active:
		if phase == "" {
			return "Time remaining"
		}
		return phase + " ends in"
	case expired:
		if phase == "" {
			return "Time is up"
		}
		return phase + " has ended"
	default:
		return "Press ENTER to configure a countdown"
	}
}
