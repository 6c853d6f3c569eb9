package usecase

import (
	"context"

	"care-coordination/internal/model"
	"care-coordination/internal/schedule"
	repo "care-coordination/internal/schedule/repository"
	"care-coordination/pkg/recurrence"
)

// SweepOverdue flips scheduled tasks due before today to missed. Tasks
// due today stay scheduled until the day is over.
func (uc *implUseCase) SweepOverdue(ctx context.Context, sc model.Scope) (schedule.SweepOutput, error) {
	updated, err := uc.repo.MarkOverdue(ctx, repo.MarkOverdueOptions{
		OrganizationID: sc.OrganizationID,
		Before:         recurrence.DateOnly(uc.now()),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SweepOverdue MarkOverdue: %v", err)
		return schedule.SweepOutput{}, err
	}
	return schedule.SweepOutput{Updated: updated}, nil
}
