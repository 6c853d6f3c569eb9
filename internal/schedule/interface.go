package schedule

import (
	"context"

	"care-coordination/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate materializes an item's occurrences as tasks. Idempotent:
	// re-running over the same window inserts nothing new.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)
	// Extend materializes additional tasks past the latest existing one.
	Extend(ctx context.Context, sc model.Scope, input ExtendInput) (ExtendOutput, error)
	// EnsureHorizon extends every open-ended active item in the caller's
	// organization up to the rolling horizon.
	EnsureHorizon(ctx context.Context, sc model.Scope, input EnsureHorizonInput) (EnsureHorizonOutput, error)
	// SweepOverdue flips scheduled tasks with a past due date to missed.
	SweepOverdue(ctx context.Context, sc model.Scope) (SweepOutput, error)
	Complete(ctx context.Context, sc model.Scope, input CompleteInput) (CompleteOutput, error)
	ListTasks(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
}
