package usecase

import (
	"context"
	"time"

	"care-coordination/internal/model"
	"care-coordination/internal/schedule"
	"care-coordination/pkg/recurrence"
)

// Extend materializes tasks past the latest one already stored. The
// expansion always runs from the rule's start date so occurrence limits
// keep counting correctly; the window start skips what already exists.
func (uc *implUseCase) Extend(ctx context.Context, sc model.Scope, input schedule.ExtendInput) (schedule.ExtendOutput, error) {
	item, err := uc.visibleItem(ctx, sc, input.ItemID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Extend visibleItem: %v", err)
		return schedule.ExtendOutput{}, err
	}
	if !item.Rule.Stepping() {
		return schedule.ExtendOutput{}, schedule.ErrItemNotRecurring
	}

	horizonMonths := input.HorizonMonths
	if horizonMonths <= 0 {
		horizonMonths = uc.cfg.ExtendHorizonMonths
	}
	to := recurrence.DateOnly(uc.now()).AddDate(0, horizonMonths, 0)
	if input.NewEndDate != nil {
		to = recurrence.DateOnly(*input.NewEndDate)
	}

	output, err := uc.extendItem(ctx, item, to)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Extend extendItem: %v", err)
		return schedule.ExtendOutput{}, err
	}
	return output, nil
}

func (uc *implUseCase) extendItem(ctx context.Context, item model.CareNeedItem, to time.Time) (schedule.ExtendOutput, error) {
	rule := item.Rule.ToRecurrence()

	from := recurrence.DateOnly(item.Rule.StartDate)
	if latest, ok, err := uc.repo.LatestDueDate(ctx, item.ID); err != nil {
		return schedule.ExtendOutput{}, err
	} else if ok {
		from = recurrence.Step(recurrence.DateOnly(latest), rule)
	}

	if to.Before(from) {
		return schedule.ExtendOutput{Upserts: 0, From: from, To: to}, nil
	}

	dates := recurrence.Expand(rule, recurrence.Window{Start: &from, End: &to})
	upserts, err := uc.materialize(ctx, item, dates)
	if err != nil {
		return schedule.ExtendOutput{}, err
	}
	return schedule.ExtendOutput{Upserts: upserts, From: from, To: to}, nil
}
