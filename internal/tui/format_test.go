package tui

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 5, 3, 0, time.UTC)
	if got := formatClock(at); got != "09:05:03" {
		t.Fatalf("formatClock = %q", got)
	}
}

func TestCountdownCaption(t *testing.T) {
	cases := []struct {
		name            string
		phase           string
		active, expired bool
		want            string
	}{
		{"active with phase", "GAME 2", true, false, "GAME 2 ends in"},
		{"active without phase", "", true, false, "Time remaining"},
		{"expired with phase", "GAME 2", false, true, "GAME 2 has ended"},
		{"expired without phase", "", false, true, "Time is up"},
		{"idle", "GAME 2", false, false, "Press ENTER to configure a countdown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := countdownCaption(tc.phase, tc.active, tc.expired); got != tc.want {
				t.Fatalf("caption = %q, want %q", got, tc.want)
			}
		})
	}
}
