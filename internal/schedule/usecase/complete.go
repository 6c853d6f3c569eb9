package usecase

import (
	"context"

	"care-coordination/internal/model"
	"care-coordination/internal/schedule"
	repo "care-coordination/internal/schedule/repository"
)

// Complete marks a scheduled or missed task as completed, recording who
// did it and, optionally, the actual cost.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, input schedule.CompleteInput) (schedule.CompleteOutput, error) {
	task, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{
		ID:             input.TaskID,
		OrganizationID: sc.OrganizationID,
		PersonIDs:      sc.VisiblePersons(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete GetOneTask: %v", err)
		return schedule.CompleteOutput{}, err
	}
	if task.ID == "" {
		return schedule.CompleteOutput{}, schedule.ErrTaskNotFound
	}
	switch task.Status {
	case model.TaskStatusScheduled, model.TaskStatusMissed:
	default:
		return schedule.CompleteOutput{}, schedule.ErrTaskNotCompletable
	}

	completedBy := input.CompletedBy
	if completedBy == "" {
		completedBy = sc.UserID
	}

	completed, err := uc.repo.CompleteTask(ctx, repo.CompleteTaskOptions{
		ID:             task.ID,
		OrganizationID: sc.OrganizationID,
		CompletedBy:    completedBy,
		Cost:           input.Cost,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete CompleteTask: %v", err)
		return schedule.CompleteOutput{}, err
	}
	if completed.ID == "" {
		// The task moved out of a completable status between the read
		// and the update.
		return schedule.CompleteOutput{}, schedule.ErrTaskNotCompletable
	}
	return schedule.CompleteOutput{Task: completed}, nil
}
