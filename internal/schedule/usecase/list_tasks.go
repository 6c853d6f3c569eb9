package usecase

import (
	"context"

	"care-coordination/internal/model"
	"care-coordination/internal/schedule"
	repo "care-coordination/internal/schedule/repository"
)

// ListTasks returns a page of tasks in the caller's scope, ordered by
// due date.
func (uc *implUseCase) ListTasks(ctx context.Context, sc model.Scope, input schedule.ListTasksInput) (schedule.ListTasksOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		OrganizationID: sc.OrganizationID,
		CareNeedItemID: input.ItemID,
		PersonID:       input.PersonID,
		PersonIDs:      sc.VisiblePersons(),
		Status:         input.Status,
		From:           input.From,
		To:             input.To,
		Limit:          input.Limit,
		Offset:         input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks ListTasks: %v", err)
		return schedule.ListTasksOutput{}, err
	}
	return schedule.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
