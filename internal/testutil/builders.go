package testutil

import (
	"time"

	"github.com/akyairhashvil/pomotask/internal/models"
	"github.com/akyairhashvil/pomotask/internal/util"
)

// TaskBuilder provides fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask() *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			Name:   "Test Task",
			Locked: true,
		},
	}
}

func (b *TaskBuilder) WithID(id int64) *TaskBuilder {
	b.task.ID = id
	return b
}

func (b *TaskBuilder) WithName(name string) *TaskBuilder {
	b.task.Name = name
	return b
}

func (b *TaskBuilder) WithEstimate(n int) *TaskBuilder {
	b.task.Estimate = n
	return b
}

func (b *TaskBuilder) Done() *TaskBuilder {
	b.task.Done = true
	return b
}

// Editing leaves the name unlocked, as a freshly added row.
func (b *TaskBuilder) Editing() *TaskBuilder {
	b.task.Locked = false
	return b
}

func (b *TaskBuilder) JustCreated() *TaskBuilder {
	b.task.JustCreated = true
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}

// TimerBuilder provides fluent API for creating test timers.
type TimerBuilder struct {
	timer models.Timer
}

func NewFocusTimer(start time.Time) *TimerBuilder {
	return &TimerBuilder{
		timer: models.Timer{
			IsPomodoro: true,
			Start:      start,
			Duration:   25,
		},
	}
}

func NewBreakTimer(start time.Time, minutes int) *TimerBuilder {
	return &TimerBuilder{
		timer: models.Timer{
			Start:    start,
			Duration: minutes,
		},
	}
}

func (b *TimerBuilder) WithID(id int64) *TimerBuilder {
	b.timer.ID = id
	return b
}

func (b *TimerBuilder) WithDuration(minutes int) *TimerBuilder {
	b.timer.Duration = minutes
	return b
}

func (b *TimerBuilder) ForTask(id int64) *TimerBuilder {
	b.timer.TaskID = util.Ptr(id)
	return b
}

func (b *TimerBuilder) Build() models.Timer {
	return b.timer
}
