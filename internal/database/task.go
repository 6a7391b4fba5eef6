package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/akyairhashvil/pomotask/internal/models"
	"github.com/akyairhashvil/pomotask/internal/util"
)

const taskColumns = `id, name, done, estimate, locked, just_created`

func scanTask(row interface{ Scan(...interface{}) error }) (models.Task, error) {
	var t models.Task
	var done, locked, justCreated int
	if err := row.Scan(&t.ID, &t.Name, &done, &t.Estimate, &locked, &justCreated); err != nil {
		return models.Task{}, err
	}
	if t.Estimate < 0 {
		return models.Task{}, fmt.Errorf("%w: task %d has negative estimate %d", ErrQueryFailure, t.ID, t.Estimate)
	}
	t.Done = util.IntToBool(done)
	t.Locked = util.IntToBool(locked)
	t.JustCreated = util.IntToBool(justCreated)
	return t, nil
}

// CreateTask inserts an unlocked, unfinished task with a zero estimate.
func (d *Database) CreateTask(ctx context.Context, name string) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var id int64
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO tasks (name, done, estimate, locked, just_created) VALUES (?, 0, 0, 0, 0)", name)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, wrapTaskErr("create", 0, err)
	}
	return id, nil
}

func (d *Database) GetTask(ctx context.Context, id int64) (models.Task, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	row := d.DB.QueryRowContext(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, wrapTaskErr("get", id, ErrNotFound)
	}
	if err != nil && !errors.Is(err, ErrQueryFailure) {
		err = scanErr(err)
	}
	return t, wrapTaskErr("get", id, err)
}

// ListTasks returns tasks in creation order.
func (d *Database) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	query, args := NewTaskQuery().WhereFilter(filter).OrderBy("id ASC").Build()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapTaskErr("list", 0, err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			if !errors.Is(err, ErrQueryFailure) {
				err = scanErr(err)
			}
			return nil, wrapTaskErr("list", 0, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapTaskErr("list", 0, scanErr(err))
	}
	return tasks, nil
}

func (d *Database) SetTaskDone(ctx context.Context, id int64, done bool) error {
	return d.updateTask(ctx, "set done", id, "UPDATE tasks SET done = ? WHERE id = ?", util.BoolToInt(done))
}

func (d *Database) SetTaskLocked(ctx context.Context, id int64, locked bool) error {
	return d.updateTask(ctx, "set locked", id, "UPDATE tasks SET locked = ? WHERE id = ?", util.BoolToInt(locked))
}

func (d *Database) SetTaskJustCreated(ctx context.Context, id int64, justCreated bool) error {
	return d.updateTask(ctx, "set just created", id, "UPDATE tasks SET just_created = ? WHERE id = ?", util.BoolToInt(justCreated))
}

func (d *Database) SetTaskName(ctx context.Context, id int64, name string) error {
	return d.updateTask(ctx, "rename", id, "UPDATE tasks SET name = ? WHERE id = ?", name)
}

func (d *Database) SetTaskEstimate(ctx context.Context, id int64, estimate int) error {
	if estimate < 0 {
		return wrapTaskErr("set estimate", id, fmt.Errorf("%w: estimate %d is negative", ErrConstraintViolation, estimate))
	}
	return d.updateTask(ctx, "set estimate", id, "UPDATE tasks SET estimate = ? WHERE id = ?", estimate)
}

// AdjustTaskEstimate adds delta to the estimate, clamping at zero, and
// returns the stored value.
func (d *Database) AdjustTaskEstimate(ctx context.Context, id int64, delta int) (int, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var estimate int
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, "SELECT estimate FROM tasks WHERE id = ?", id).Scan(&estimate); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return scanErr(err)
		}
		estimate = util.Clamp(estimate+delta, 0, math.MaxInt32)
		_, err := tx.ExecContext(ctx, "UPDATE tasks SET estimate = ? WHERE id = ?", estimate, id)
		return err
	})
	if err != nil {
		return 0, wrapTaskErr("adjust estimate", id, err)
	}
	return estimate, nil
}

// ConfirmTaskName commits an edited name. A blank name deletes the task
// instead; the returned flag reports which happened.
func (d *Database) ConfirmTaskName(ctx context.Context, id int64, name string) (bool, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	deleted := name == ""
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if deleted {
			res, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
			if err != nil {
				return err
			}
			return requireRow(res)
		}
		res, err := tx.ExecContext(ctx,
			"UPDATE tasks SET name = ?, locked = 1, just_created = 1 WHERE id = ?", name, id)
		if err != nil {
			return err
		}
		return requireRow(res)
	})
	if err != nil {
		return false, wrapTaskErr("confirm name", id, err)
	}
	return deleted, nil
}

// DeleteTask removes the task row only. Timers keep their task reference so
// history survives.
func (d *Database) DeleteTask(ctx context.Context, id int64) error {
	return d.updateTask(ctx, "delete", id, "DELETE FROM tasks WHERE id = ?")
}

func (d *Database) updateTask(ctx context.Context, op string, id int64, query string, args ...interface{}) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	args = append(args, id)
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		return requireRow(res)
	})
	return wrapTaskErr(op, id, err)
}

func taskExistsTx(ctx context.Context, tx *sql.Tx, id int64) (bool, error) {
	var n int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM tasks WHERE id = ?", id).Scan(&n); err != nil {
		return false, scanErr(err)
	}
	return n > 0, nil
}
