package usecase

import (
	"context"

	careneedRepo "care-coordination/internal/careneed/repository"
	"care-coordination/internal/model"
	"care-coordination/internal/schedule"
	"care-coordination/pkg/recurrence"
)

// EnsureHorizon walks every open-ended active item visible to the
// caller and extends it up to the rolling horizon. Meant to be hit
// periodically; each pass only inserts what the horizon newly
// uncovered.
func (uc *implUseCase) EnsureHorizon(ctx context.Context, sc model.Scope, input schedule.EnsureHorizonInput) (schedule.EnsureHorizonOutput, error) {
	items, _, err := uc.itemRepo.ListItems(ctx, careneedRepo.ListItemsOptions{
		OrganizationID: sc.OrganizationID,
		PersonIDs:      sc.VisiblePersons(),
		Status:         model.ItemStatusActive,
		OpenEndedOnly:  true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.EnsureHorizon ListItems: %v", err)
		return schedule.EnsureHorizonOutput{}, err
	}

	horizonDays := input.HorizonDays
	if horizonDays <= 0 {
		horizonDays = uc.cfg.HorizonDays
	}
	to := recurrence.DateOnly(uc.now()).AddDate(0, 0, horizonDays)

	var output schedule.EnsureHorizonOutput
	for i := range items {
		output.Checked++
		ext, err := uc.extendItem(ctx, items[i], to)
		if err != nil {
			uc.l.Errorf(ctx, "uc.EnsureHorizon extendItem %s: %v", items[i].ID, err)
			return output, err
		}
		if ext.Upserts > 0 {
			output.Extended++
			output.Upserts += ext.Upserts
		}
	}
	return output, nil
}
