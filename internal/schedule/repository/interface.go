package repository

import (
	"context"
	"time"

	"care-coordination/internal/model"
)

// Repository is the composed interface for the schedule data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for CareTask.
// GetOneTask returns the zero value (ID == "") when nothing matches;
// not-found is not an error at this layer.
type TaskRepository interface {
	// UpsertTask inserts the task or, when a row already exists for
	// (care_need_item_id, due_date), refreshes its scheduling fields
	// without touching status, cost or completion data. The bool
	// reports whether a new row was inserted.
	UpsertTask(ctx context.Context, opt UpsertTaskOptions) (model.CareTask, bool, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.CareTask, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.CareTask, int, error)
	// LatestDueDate returns the most recent due date materialized for an
	// item, and false when the item has no tasks yet.
	LatestDueDate(ctx context.Context, itemID string) (time.Time, bool, error)
	CompleteTask(ctx context.Context, opt CompleteTaskOptions) (model.CareTask, error)
	// MarkOverdue flips scheduled tasks due strictly before the cutoff
	// to missed and returns how many rows changed.
	MarkOverdue(ctx context.Context, opt MarkOverdueOptions) (int, error)
}
