package models

import "time"

// TaskFilter selects which tasks a list view shows.
type TaskFilter string

const (
	FilterAll     TaskFilter = "all"
	FilterPending TaskFilter = "pending"
)

// Valid reports whether f is a known filter.
func (f TaskFilter) Valid() bool {
	return f == FilterAll || f == FilterPending
}

// Task is a planned unit of work.
type Task struct {
	ID          int64
	Name        string
	Done        bool
	Estimate    int  // planned Pomodoros, never negative
	Locked      bool // false while the name is still editable
	JustCreated bool // presentation hint: grab focus on the next redraw
}

// Timer is one focus or break interval.
type Timer struct {
	ID         int64
	IsPomodoro bool
	Start      time.Time
	Duration   int    // minutes
	TaskID     *int64 // nil while unattributed
}

// Attributed reports whether the timer has been linked to a task.
func (t Timer) Attributed() bool {
	return t.TaskID != nil
}

// End is the instant the interval expires.
func (t Timer) End() time.Time {
	return t.Start.Add(time.Duration(t.Duration) * time.Minute)
}

// DayCount is the number of focus intervals started on one calendar date.
type DayCount struct {
	Date  string // 2006-01-02, local to the clock that produced it
	Count int
}
