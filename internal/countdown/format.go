package countdown

import (
	"fmt"
	"time"
)

// ZeroDisplay is the frozen readout shown at and after expiry.
const ZeroDisplay = "00:00:00"

// FormatRemaining renders a span as zero-padded HH:MM:SS. Hours do not wrap
// at 24: a 30-hour countdown renders as "30:00:00".
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return ZeroDisplay
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
