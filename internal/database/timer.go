package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akyairhashvil/pomotask/internal/models"
	"github.com/akyairhashvil/pomotask/internal/util"
)

const timerColumns = `id, is_pomodoro, start, duration, task`

func scanTimer(row interface{ Scan(...interface{}) error }) (models.Timer, error) {
	var t models.Timer
	var isPomodoro int
	var task sql.NullInt64
	if err := row.Scan(&t.ID, &isPomodoro, &t.Start, &t.Duration, &task); err != nil {
		return models.Timer{}, scanErr(err)
	}
	if t.Duration <= 0 {
		return models.Timer{}, fmt.Errorf("%w: timer %d has duration %d", ErrQueryFailure, t.ID, t.Duration)
	}
	// The driver scans an unparseable DATETIME as the zero time.
	if t.Start.IsZero() {
		return models.Timer{}, fmt.Errorf("%w: timer %d has unreadable start", ErrQueryFailure, t.ID)
	}
	t.IsPomodoro = util.IntToBool(isPomodoro)
	t.TaskID = int64Ptr(task)
	return t, nil
}

// CreateTimer inserts an interval. An unattributed timer replaces any other
// unattributed timer in the same transaction, so at most one ever exists.
// An attributed timer must reference an existing task.
func (d *Database) CreateTimer(ctx context.Context, timer models.Timer) (int64, error) {
	if timer.Duration <= 0 {
		return 0, wrapTimerErr("create", 0, fmt.Errorf("%w: duration must be positive, got %d", ErrConstraintViolation, timer.Duration))
	}
	if timer.Start.IsZero() {
		return 0, wrapTimerErr("create", 0, fmt.Errorf("%w: start time is required", ErrConstraintViolation))
	}

	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var id int64
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if timer.TaskID == nil {
			if _, err := tx.ExecContext(ctx, "DELETE FROM timers WHERE task IS NULL"); err != nil {
				return err
			}
		} else {
			ok, err := taskExistsTx(ctx, tx, *timer.TaskID)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("task %d: %w", *timer.TaskID, ErrNotFound)
			}
		}
		res, err := tx.ExecContext(ctx,
			"INSERT INTO timers (is_pomodoro, start, duration, task) VALUES (?, ?, ?, ?)",
			util.BoolToInt(timer.IsPomodoro), timer.Start.UTC(), timer.Duration, nullableInt64(timer.TaskID))
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, wrapTimerErr("create", 0, err)
	}
	return id, nil
}

// RunningTimers returns the unattributed timers, oldest first. The create
// path keeps this at zero or one row.
func (d *Database) RunningTimers(ctx context.Context) ([]models.Timer, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, "SELECT "+timerColumns+" FROM timers WHERE task IS NULL ORDER BY id ASC")
	if err != nil {
		return nil, wrapTimerErr("list running", 0, err)
	}
	defer rows.Close()

	var timers []models.Timer
	for rows.Next() {
		t, err := scanTimer(rows)
		if err != nil {
			return nil, wrapTimerErr("list running", 0, err)
		}
		timers = append(timers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapTimerErr("list running", 0, scanErr(err))
	}
	return timers, nil
}

// ClearUnattributed deletes every timer without a task and reports how many
// rows went away.
func (d *Database) ClearUnattributed(ctx context.Context) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var n int64
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM timers WHERE task IS NULL")
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, wrapTimerErr("clear unattributed", 0, err)
	}
	return n, nil
}

// AttachTimer links a focus interval to a task, once. Attaching also raises
// the task's estimate to at least its completed count.
func (d *Database) AttachTimer(ctx context.Context, timerID, taskID int64) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		var isPomodoro int
		var current sql.NullInt64
		err := tx.QueryRowContext(ctx, "SELECT is_pomodoro, task FROM timers WHERE id = ?", timerID).Scan(&isPomodoro, &current)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return scanErr(err)
		}
		if current.Valid {
			return ErrAlreadyAttached
		}
		if !util.IntToBool(isPomodoro) {
			return fmt.Errorf("%w: break intervals cannot be attached", ErrConstraintViolation)
		}
		ok, err := taskExistsTx(ctx, tx, taskID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("task %d: %w", taskID, ErrNotFound)
		}
		res, err := tx.ExecContext(ctx, "UPDATE timers SET task = ? WHERE id = ? AND task IS NULL", taskID, timerID)
		if err != nil {
			return err
		}
		if err := requireRow(res); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE tasks
			SET estimate = MAX(estimate, (SELECT COUNT(1) FROM timers WHERE task = ?))
			WHERE id = ?`, taskID, taskID)
		return err
	})
	return wrapTimerErr("attach", timerID, err)
}

// CountForTask returns the number of timers attributed to taskID. Unknown
// and deleted tasks count their surviving rows, possibly zero.
func (d *Database) CountForTask(ctx context.Context, taskID int64) (int, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var n int
	if err := d.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM timers WHERE task = ?", taskID).Scan(&n); err != nil {
		return 0, wrapTimerErr("count", 0, scanErr(err))
	}
	return n, nil
}

// CountsByTask returns completed counts keyed by task id, including ids whose
// task has since been deleted.
func (d *Database) CountsByTask(ctx context.Context) (map[int64]int, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, "SELECT task, COUNT(1) FROM timers WHERE task IS NOT NULL GROUP BY task")
	if err != nil {
		return nil, wrapTimerErr("count by task", 0, err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var taskID int64
		var n int
		if err := rows.Scan(&taskID, &n); err != nil {
			return nil, wrapTimerErr("count by task", 0, scanErr(err))
		}
		counts[taskID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, wrapTimerErr("count by task", 0, scanErr(err))
	}
	return counts, nil
}
