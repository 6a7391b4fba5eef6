package database

import (
	"context"
	"fmt"
	"time"
)

// PomodoroStartsBetween returns focus interval start times in [from, to],
// ascending.
func (d *Database) PomodoroStartsBetween(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, `
		SELECT start FROM timers
		WHERE is_pomodoro = 1 AND start >= ? AND start <= ?
		ORDER BY start ASC`, from.UTC(), to.UTC())
	if err != nil {
		return nil, &OpError{Op: "list starts", Resource: "stats", Err: err}
	}
	defer rows.Close()

	var starts []time.Time
	for rows.Next() {
		var start time.Time
		if err := rows.Scan(&start); err != nil {
			return nil, &OpError{Op: "list starts", Resource: "stats", Err: scanErr(err)}
		}
		if start.IsZero() {
			return nil, &OpError{Op: "list starts", Resource: "stats", Err: fmt.Errorf("%w: unreadable start", ErrQueryFailure)}
		}
		starts = append(starts, start)
	}
	if err := rows.Err(); err != nil {
		return nil, &OpError{Op: "list starts", Resource: "stats", Err: scanErr(err)}
	}
	return starts, nil
}
