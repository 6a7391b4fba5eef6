package database

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable means the store could not be opened or created.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrConstraintViolation marks a rejected mutation; nothing was written.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrQueryFailure marks a row that could not be read back as expected.
	ErrQueryFailure = errors.New("query failure")

	ErrNotFound        = fmt.Errorf("%w: not found", ErrConstraintViolation)
	ErrAlreadyAttached = fmt.Errorf("%w: timer already attached to a task", ErrConstraintViolation)
)

type OpError struct {
	Op       string
	Resource string
	ID       int64
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapTaskErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "task", ID: id, Err: err}
}

func wrapTimerErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "timer", ID: id, Err: err}
}

func wrapSettingErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "setting", Err: err}
}

// scanErr classifies a failure while reading rows.
func scanErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrQueryFailure, err)
}
