package pomodoro

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/pomotask/internal/config"
	"github.com/akyairhashvil/pomotask/internal/database"
	"github.com/akyairhashvil/pomotask/internal/models"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

var (
	ErrNoCurrentTimer     = fmt.Errorf("%w: no interval is running", database.ErrConstraintViolation)
	ErrNotExpired         = fmt.Errorf("%w: interval has not finished", database.ErrConstraintViolation)
	ErrBreakNotAttachable = fmt.Errorf("%w: breaks cannot be attached to a task", database.ErrConstraintViolation)
)

// TaskView is a task with its completed focus count.
type TaskView struct {
	models.Task
	Completed int
}

// View is everything a renderer needs for one frame.
type View struct {
	Tasks  []TaskView
	Timer  Snapshot
	Target int
	Filter models.TaskFilter
	// BreakFinished is set on the refresh that cleared an expired break.
	BreakFinished bool
}

// Engine is the entry point for the presentation. It holds no timer state
// of its own; every call reads the store and the clock.
type Engine struct {
	repo       database.Repository
	clock      clockwork.Clock
	durations  Durations
	windowDays int
	log        *zap.Logger
}

type Option func(*Engine)

func WithClock(c clockwork.Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

func WithDurations(d Durations) Option {
	return func(e *Engine) { e.durations = d }
}

// WithStatsWindow sets how many trailing days feed the daily target.
func WithStatsWindow(days int) Option {
	return func(e *Engine) {
		if days > 0 {
			e.windowDays = days
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

func New(repo database.Repository, opts ...Option) *Engine {
	e := &Engine{
		repo:       repo,
		clock:      clockwork.NewRealClock(),
		durations:  DefaultDurations(),
		windowDays: config.StatsWindowDays,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Durations() Durations { return e.durations }

func (e *Engine) Now() time.Time { return e.clock.Now() }

// Start replaces any unattributed interval with a new one of kind starting now.
func (e *Engine) Start(ctx context.Context, kind Kind) (Snapshot, error) {
	now := e.clock.Now()
	minutes := int(e.durations.For(kind) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	timer := models.Timer{
		IsPomodoro: kind == KindFocus,
		Start:      now,
		Duration:   minutes,
	}
	id, err := e.repo.CreateTimer(ctx, timer)
	if err != nil {
		e.log.Warn("start interval failed", zap.Stringer("kind", kind), zap.Error(err))
		return Snapshot{}, err
	}
	timer.ID = id
	e.log.Debug("interval started", zap.Int64("timer", id), zap.Stringer("kind", kind), zap.Int("minutes", minutes))
	return EvaluateWith(&timer, now, e.durations), nil
}

// Cancel discards the unattributed interval, whatever its phase.
func (e *Engine) Cancel(ctx context.Context) error {
	n, err := e.repo.ClearUnattributed(ctx)
	if err != nil {
		e.log.Warn("cancel interval failed", zap.Error(err))
		return err
	}
	e.log.Debug("interval cancelled", zap.Int64("removed", n))
	return nil
}

// Snapshot reads the current timer state. It never writes.
func (e *Engine) Snapshot(ctx context.Context) (Snapshot, error) {
	return e.snapshotAt(ctx, e.clock.Now())
}

func (e *Engine) snapshotAt(ctx context.Context, now time.Time) (Snapshot, error) {
	timers, err := e.repo.RunningTimers(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	if len(timers) == 0 {
		return EvaluateWith(nil, now, e.durations), nil
	}
	if len(timers) > 1 {
		e.log.Warn("more than one unattributed interval", zap.Int("count", len(timers)))
	}
	current := timers[len(timers)-1]
	return EvaluateWith(&current, now, e.durations), nil
}

// AttachCurrent credits the expired focus interval to taskID.
func (e *Engine) AttachCurrent(ctx context.Context, taskID int64) error {
	snap, err := e.Snapshot(ctx)
	if err != nil {
		return err
	}
	switch {
	case snap.Idle():
		return ErrNoCurrentTimer
	case snap.Kind != KindFocus:
		return ErrBreakNotAttachable
	case snap.Running():
		return ErrNotExpired
	}
	if err := e.repo.AttachTimer(ctx, snap.Timer.ID, taskID); err != nil {
		e.log.Warn("attach failed", zap.Int64("timer", snap.Timer.ID), zap.Int64("task", taskID), zap.Error(err))
		return err
	}
	e.log.Debug("interval attached", zap.Int64("timer", snap.Timer.ID), zap.Int64("task", taskID))
	return nil
}

// Refresh reloads everything a frame shows. An expired break is cleared
// here, which is the only write a refresh performs.
func (e *Engine) Refresh(ctx context.Context, filter models.TaskFilter) (View, error) {
	if !filter.Valid() {
		filter = models.FilterAll
	}
	now := e.clock.Now()
	snap, err := e.snapshotAt(ctx, now)
	if err != nil {
		return View{}, err
	}

	view := View{Filter: filter}
	if snap.Expired() && snap.Kind != KindFocus {
		if _, err := e.repo.ClearUnattributed(ctx); err != nil {
			return View{}, err
		}
		e.log.Debug("break finished", zap.Int64("timer", snap.Timer.ID))
		view.BreakFinished = true
		snap = EvaluateWith(nil, now, e.durations)
	}
	view.Timer = snap

	tasks, err := e.repo.ListTasks(ctx, filter)
	if err != nil {
		return View{}, err
	}
	counts, err := e.repo.CountsByTask(ctx)
	if err != nil {
		return View{}, err
	}
	view.Tasks = make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		view.Tasks = append(view.Tasks, TaskView{Task: t, Completed: counts[t.ID]})
	}

	if view.Target, err = e.targetAt(ctx, now); err != nil {
		return View{}, err
	}
	return view, nil
}

// DailyTarget suggests how many focus intervals to plan today.
func (e *Engine) DailyTarget(ctx context.Context) (int, error) {
	return e.targetAt(ctx, e.clock.Now())
}

func (e *Engine) targetAt(ctx context.Context, now time.Time) (int, error) {
	days, err := e.dailyCountsAt(ctx, now)
	if err != nil {
		return 0, err
	}
	return Target(days), nil
}

// DailyCounts returns the per-day counts behind DailyTarget.
func (e *Engine) DailyCounts(ctx context.Context) ([]models.DayCount, error) {
	return e.dailyCountsAt(ctx, e.clock.Now())
}

func (e *Engine) dailyCountsAt(ctx context.Context, now time.Time) ([]models.DayCount, error) {
	starts, err := e.repo.PomodoroStartsBetween(ctx, now.AddDate(0, 0, -e.windowDays), now)
	if err != nil {
		return nil, err
	}
	return DailyCounts(starts, now), nil
}

// History returns every focus start in the window grouped by date, without
// the time of day cut.
func (e *Engine) History(ctx context.Context) ([]models.DayCount, error) {
	now := e.clock.Now()
	starts, err := e.repo.PomodoroStartsBetween(ctx, now.AddDate(0, 0, -e.windowDays), now)
	if err != nil {
		return nil, err
	}
	return CountsByDate(starts, now.Location()), nil
}

// PollInterval is how soon the presentation should refresh again. Zero
// means no timer needs watching.
func (e *Engine) PollInterval(s Snapshot) time.Duration {
	if s.Running() {
		return config.PollInterval
	}
	return 0
}

// AddTask appends an empty, editable task.
func (e *Engine) AddTask(ctx context.Context) (int64, error) {
	return e.repo.CreateTask(ctx, "")
}

// ConfirmName locks the task under name. A blank name deletes the task and
// reports deleted.
func (e *Engine) ConfirmName(ctx context.Context, id int64, name string) (deleted bool, err error) {
	deleted, err = e.repo.ConfirmTaskName(ctx, id, name)
	if err == nil && deleted {
		e.log.Debug("empty task removed", zap.Int64("task", id))
	}
	return deleted, err
}

// Unlock makes the task name editable again.
func (e *Engine) Unlock(ctx context.Context, id int64) error {
	return e.repo.SetTaskLocked(ctx, id, false)
}

func (e *Engine) ToggleDone(ctx context.Context, id int64) (bool, error) {
	task, err := e.repo.GetTask(ctx, id)
	if err != nil {
		return false, err
	}
	done := !task.Done
	if err := e.repo.SetTaskDone(ctx, id, done); err != nil {
		return task.Done, err
	}
	return done, nil
}

func (e *Engine) AdjustEstimate(ctx context.Context, id int64, delta int) (int, error) {
	return e.repo.AdjustTaskEstimate(ctx, id, delta)
}

// DeleteTask removes the task. Its completed intervals stay in history.
func (e *Engine) DeleteTask(ctx context.Context, id int64) error {
	return e.repo.DeleteTask(ctx, id)
}

// ClearJustCreated drops the focus hint once the list has been drawn.
func (e *Engine) ClearJustCreated(ctx context.Context, id int64) error {
	err := e.repo.SetTaskJustCreated(ctx, id, false)
	if errors.Is(err, database.ErrNotFound) {
		return nil
	}
	return err
}

// Filter returns the persisted list filter, or fallback when none is stored.
func (e *Engine) Filter(ctx context.Context, fallback models.TaskFilter) (models.TaskFilter, error) {
	value, ok, err := e.repo.GetSetting(ctx, config.SettingTaskFilter)
	if err != nil {
		return fallback, err
	}
	f := models.TaskFilter(value)
	if !ok || !f.Valid() {
		return fallback, nil
	}
	return f, nil
}

func (e *Engine) SetFilter(ctx context.Context, f models.TaskFilter) error {
	if !f.Valid() {
		return fmt.Errorf("%w: unknown filter %q", database.ErrConstraintViolation, f)
	}
	return e.repo.SetSetting(ctx, config.SettingTaskFilter, string(f))
}
