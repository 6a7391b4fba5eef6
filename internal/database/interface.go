package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/pomotask/internal/models"
)

// TaskRepository defines task-related database operations.
type TaskRepository interface {
	CreateTask(ctx context.Context, name string) (int64, error)
	GetTask(ctx context.Context, id int64) (models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	SetTaskDone(ctx context.Context, id int64, done bool) error
	SetTaskLocked(ctx context.Context, id int64, locked bool) error
	SetTaskJustCreated(ctx context.Context, id int64, justCreated bool) error
	SetTaskName(ctx context.Context, id int64, name string) error
	SetTaskEstimate(ctx context.Context, id int64, estimate int) error
	AdjustTaskEstimate(ctx context.Context, id int64, delta int) (int, error)
	ConfirmTaskName(ctx context.Context, id int64, name string) (bool, error)
	DeleteTask(ctx context.Context, id int64) error
}

// TimerRepository defines timer-related database operations.
type TimerRepository interface {
	CreateTimer(ctx context.Context, timer models.Timer) (int64, error)
	RunningTimers(ctx context.Context) ([]models.Timer, error)
	ClearUnattributed(ctx context.Context) (int64, error)
	AttachTimer(ctx context.Context, timerID, taskID int64) error
	CountForTask(ctx context.Context, taskID int64) (int, error)
	CountsByTask(ctx context.Context) (map[int64]int, error)
}

// StatsRepository supplies raw history for the statistics engine.
type StatsRepository interface {
	PomodoroStartsBetween(ctx context.Context, from, to time.Time) ([]time.Time, error)
}

// SettingsRepository stores presentation preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -destination=../pomodoro/mock_repository_test.go -package=pomodoro github.com/akyairhashvil/pomotask/internal/database Repository
type Repository interface {
	TaskRepository
	TimerRepository
	StatsRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
