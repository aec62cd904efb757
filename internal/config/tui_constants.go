package config

// Layout constants.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 72

	// TargetBarWidth is the preferred width for the progress bar.
	TargetBarWidth = 60

	// MinBarWidth is the minimum width for the progress bar.
	MinBarWidth = 20

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxNameLength is the maximum tournament name length.
	MaxNameLength = 60

	// MaxLabelLength is the maximum schedule item label length.
	MaxLabelLength = 30
)
