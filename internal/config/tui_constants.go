package config

// Layout constants.
const (
	// MinNameWidth is the narrowest a task name column is rendered.
	MinNameWidth = 10

	// TargetNameWidth is the preferred task name width.
	TargetNameWidth = 40

	// CompactModeThreshold drops the help line below this width.
	CompactModeThreshold = 60

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxTaskNameLength is the maximum task name length.
	MaxTaskNameLength = 120
)

// DefaultWindowTitle is shown while no interval is running.
const DefaultWindowTitle = "Pomodoro To Do List"
