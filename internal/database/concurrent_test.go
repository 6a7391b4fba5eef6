package database

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/akyairhashvil/pomotask/internal/models"
)

func TestConcurrentTimerStarts(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := db.CreateTimer(ctx, models.Timer{
				IsPomodoro: i%2 == 0,
				Start:      fixedNow().Add(time.Duration(i) * time.Second),
				Duration:   25,
			})
			if err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent start failed: %v", err)
	}
	running, err := db.RunningTimers(ctx)
	if err != nil {
		t.Fatalf("RunningTimers failed: %v", err)
	}
	if len(running) != 1 {
		t.Fatalf("expected exactly one running timer, got %d", len(running))
	}
}

func TestConcurrentEstimateAdjustments(t *testing.T) {
	ctx := context.Background()
	b := NewTestDataBuilder(t).WithTask("Shared")
	db := b.Build()
	taskID := b.TaskID(0)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := db.AdjustTaskEstimate(ctx, taskID, 1); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent adjust failed: %v", err)
	}
	task, err := db.GetTask(ctx, taskID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if task.Estimate != 20 {
		t.Fatalf("expected estimate 20, got %d", task.Estimate)
	}
}
