package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akyairhashvil/pomotask/internal/models"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Environment overrides.
const (
	EnvDBPath       = "POMOTASK_DB_PATH"
	EnvLogLevel     = "POMOTASK_LOG_LEVEL"
	EnvFocusMinutes = "POMOTASK_FOCUS_MINUTES"
)

type TimerSettings struct {
	FocusMinutes      int `toml:"focus_minutes"`
	ShortBreakMinutes int `toml:"short_break_minutes"`
	LongBreakMinutes  int `toml:"long_break_minutes"`
}

type LogSettings struct {
	Level    string `toml:"level"`
	Encoding string `toml:"encoding"`
	File     string `toml:"file"`
}

// Settings is the user-editable configuration file.
type Settings struct {
	DBPath          string        `toml:"db_path"`
	DefaultFilter   string        `toml:"default_filter"`
	StatsWindowDays int           `toml:"stats_window_days"`
	Theme           string        `toml:"theme"`
	Timer           TimerSettings `toml:"timer"`
	Log             LogSettings   `toml:"log"`
}

// Defaults returns settings rooted at dataDir.
func Defaults(dataDir string) Settings {
	return Settings{
		DBPath:          filepath.Join(dataDir, DBFileName),
		DefaultFilter:   string(models.FilterAll),
		StatsWindowDays: StatsWindowDays,
		Theme:           "default",
		Timer: TimerSettings{
			FocusMinutes:      int(FocusDuration.Minutes()),
			ShortBreakMinutes: int(ShortBreakDuration.Minutes()),
			LongBreakMinutes:  int(LongBreakDuration.Minutes()),
		},
		Log: LogSettings{
			Level:    "info",
			Encoding: "json",
			File:     filepath.Join(dataDir, LogFileName),
		},
	}
}

// LoadOrCreate reads path, writing the defaults there first if it does not exist.
// Values from a .env file and the process environment override the file.
func LoadOrCreate(path, dataDir string) (Settings, error) {
	cfg := Defaults(dataDir)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	_ = godotenv.Load(EnvFileName)
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dataDir, DBFileName)
	}
	return cfg, cfg.Validate()
}

func (s *Settings) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvDBPath)); v != "" {
		s.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		s.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFocusMinutes)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFocusMinutes, err)
		}
		s.Timer.FocusMinutes = n
	}
	return nil
}

// Validate rejects settings the engine cannot run with.
func (s Settings) Validate() error {
	if s.Timer.FocusMinutes <= 0 {
		return fmt.Errorf("timer.focus_minutes must be positive, got %d", s.Timer.FocusMinutes)
	}
	if s.Timer.ShortBreakMinutes <= 0 {
		return fmt.Errorf("timer.short_break_minutes must be positive, got %d", s.Timer.ShortBreakMinutes)
	}
	if s.Timer.LongBreakMinutes <= 0 {
		return fmt.Errorf("timer.long_break_minutes must be positive, got %d", s.Timer.LongBreakMinutes)
	}
	if s.StatsWindowDays <= 0 {
		return fmt.Errorf("stats_window_days must be positive, got %d", s.StatsWindowDays)
	}
	if !models.TaskFilter(s.DefaultFilter).Valid() {
		return fmt.Errorf("default_filter must be %q or %q, got %q", models.FilterAll, models.FilterPending, s.DefaultFilter)
	}
	return nil
}

func write(path string, cfg Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
