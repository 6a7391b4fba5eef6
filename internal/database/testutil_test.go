package database

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/pomotask/internal/models"
)

type TestDataBuilder struct {
	t        *testing.T
	ctx      context.Context
	db       *Database
	taskIDs  []int64
	timerIDs []int64
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

// WithTask creates a task and confirms its name, as the list does on Enter.
func (b *TestDataBuilder) WithTask(name string) *TestDataBuilder {
	b.t.Helper()
	id, err := b.db.CreateTask(b.ctx, "")
	if err != nil {
		b.t.Fatalf("CreateTask failed: %v", err)
	}
	if _, err := b.db.ConfirmTaskName(b.ctx, id, name); err != nil {
		b.t.Fatalf("ConfirmTaskName failed: %v", err)
	}
	b.taskIDs = append(b.taskIDs, id)
	return b
}

// WithCompletedPomodoros attaches count finished focus intervals to the most
// recent task, one per day going back from start.
func (b *TestDataBuilder) WithCompletedPomodoros(count int, start time.Time) *TestDataBuilder {
	b.t.Helper()
	if len(b.taskIDs) == 0 {
		b.WithTask("Default")
	}
	taskID := b.taskIDs[len(b.taskIDs)-1]
	for i := 0; i < count; i++ {
		id, err := b.db.CreateTimer(b.ctx, models.Timer{
			IsPomodoro: true,
			Start:      start.AddDate(0, 0, -i),
			Duration:   25,
			TaskID:     &taskID,
		})
		if err != nil {
			b.t.Fatalf("CreateTimer failed: %v", err)
		}
		b.timerIDs = append(b.timerIDs, id)
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) TaskID(i int) int64 {
	if i < 0 || i >= len(b.taskIDs) {
		return 0
	}
	return b.taskIDs[i]
}
