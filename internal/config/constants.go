package config

import "time"

// Timer durations.
const (
	FocusDuration      = 25 * time.Minute
	ShortBreakDuration = 5 * time.Minute
	LongBreakDuration  = 15 * time.Minute
)

// Refresh cadence while an interval is running.
const PollInterval = 300 * time.Millisecond

// Statistics.
const StatsWindowDays = 30

// Application settings.
const (
	AppName        = "pomotask"
	DBFileName     = "tasks.db"
	ConfigFileName = "config.toml"
	LogFileName    = "pomotask.log"
	EnvFileName    = ".env"
)

// Settings table keys.
const (
	SettingTaskFilter = "task_filter"
)
