package usecase

import (
	"context"
	"time"

	"care-coordination/internal/model"
	"care-coordination/internal/schedule"
	repo "care-coordination/internal/schedule/repository"
	"care-coordination/pkg/recurrence"
)

// Generate materializes an item's occurrences inside a window. The
// window defaults to [item start, item start + windowYears]. Calling it
// again over the same window is a no-op thanks to the upsert contract.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input schedule.GenerateInput) (schedule.GenerateOutput, error) {
	item, err := uc.visibleItem(ctx, sc, input.ItemID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Generate visibleItem: %v", err)
		return schedule.GenerateOutput{}, err
	}

	windowStart, windowEnd, err := uc.resolveWindow(item, input)
	if err != nil {
		return schedule.GenerateOutput{}, err
	}

	dates := recurrence.Expand(item.Rule.ToRecurrence(),
		recurrence.Window{Start: &windowStart, End: &windowEnd})

	upserts, err := uc.materialize(ctx, item, dates)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Generate materialize: %v", err)
		return schedule.GenerateOutput{}, err
	}

	return schedule.GenerateOutput{
		Item:           item,
		Upserts:        upserts,
		TotalGenerated: len(dates),
		WindowStart:    windowStart,
		WindowEnd:      windowEnd,
	}, nil
}

func (uc *implUseCase) resolveWindow(item model.CareNeedItem, input schedule.GenerateInput) (time.Time, time.Time, error) {
	start := recurrence.DateOnly(item.Rule.StartDate)
	if input.WindowStart != nil {
		start = recurrence.DateOnly(*input.WindowStart)
	}

	var end time.Time
	switch {
	case input.WindowEnd != nil:
		end = recurrence.DateOnly(*input.WindowEnd)
	case item.Rule.EndDate != nil:
		end = recurrence.DateOnly(*item.Rule.EndDate)
	default:
		end = start.AddDate(uc.cfg.DefaultWindowYears, 0, 0)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, schedule.ErrInvalidWindow
	}
	return start, end, nil
}

// materialize upserts one task per occurrence date and reports how many
// rows were newly inserted. Timed items get concrete start/end instants
// from the item's clock window.
func (uc *implUseCase) materialize(ctx context.Context, item model.CareNeedItem, dates []time.Time) (int, error) {
	upserts := 0
	for _, due := range dates {
		opt := repo.UpsertTaskOptions{
			CareNeedItemID: item.ID,
			OrganizationID: item.OrganizationID,
			PersonID:       item.PersonID,
			Title:          item.Name,
			DueDate:        due,
			ScheduleType:   item.ScheduleType,
		}
		if item.ScheduleType == model.ScheduleTimed && item.TimeWindow != nil {
			startAt, endAt, err := item.TimeWindow.Bounds(due)
			if err != nil {
				return upserts, schedule.ErrInvalidWindow
			}
			opt.StartAt = &startAt
			opt.EndAt = &endAt
		}

		task, inserted, err := uc.repo.UpsertTask(ctx, opt)
		if err != nil {
			return upserts, err
		}
		if !inserted {
			continue
		}
		upserts++

		if uc.exporter != nil && task.ScheduleType == model.ScheduleTimed {
			if err := uc.exporter.ExportTask(ctx, task); err != nil {
				uc.l.Warnf(ctx, "calendar export for task %s: %v", task.ID, err)
			}
		}
	}
	return upserts, nil
}
