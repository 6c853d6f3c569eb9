package usecase_test

import (
	"context"
	"fmt"
	"time"

	careneedRepo "care-coordination/internal/careneed/repository"
	"care-coordination/internal/model"
	repo "care-coordination/internal/schedule/repository"
	"care-coordination/internal/schedule/usecase"
)

// testCfg keeps the ensure-horizon cutoff at 2024-12-15 relative to
// fixedNow, matching the six-month extension default.
var testCfg = usecase.Config{
	DefaultWindowYears:  2,
	ExtendHorizonMonths: 6,
	HorizonDays:         183,
}

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

type mockItemRepo struct {
	getOneFunc func(opt careneedRepo.GetOneItemOptions) (model.CareNeedItem, error)
	listFunc   func(opt careneedRepo.ListItemsOptions) ([]model.CareNeedItem, int, error)
}

func (m *mockItemRepo) CreateItem(ctx context.Context, opt careneedRepo.CreateItemOptions) (model.CareNeedItem, error) {
	return model.CareNeedItem{}, nil
}

func (m *mockItemRepo) GetOneItem(ctx context.Context, opt careneedRepo.GetOneItemOptions) (model.CareNeedItem, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.CareNeedItem{}, nil
}

func (m *mockItemRepo) ListItems(ctx context.Context, opt careneedRepo.ListItemsOptions) ([]model.CareNeedItem, int, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockItemRepo) UpdateItem(ctx context.Context, opt careneedRepo.UpdateItemOptions) (model.CareNeedItem, error) {
	return model.CareNeedItem{}, nil
}

// mockTaskRepo keeps a due-date set per item so upsert idempotency
// behaves like the real store.
type mockTaskRepo struct {
	existing map[string]map[string]bool // itemID -> due date -> present
	upserted []repo.UpsertTaskOptions

	getOneFunc      func(opt repo.GetOneTaskOptions) (model.CareTask, error)
	completeFunc    func(opt repo.CompleteTaskOptions) (model.CareTask, error)
	markOverdueFunc func(opt repo.MarkOverdueOptions) (int, error)
	listFunc        func(opt repo.ListTasksOptions) ([]model.CareTask, int, error)
}

func (m *mockTaskRepo) UpsertTask(ctx context.Context, opt repo.UpsertTaskOptions) (model.CareTask, bool, error) {
	if m.existing == nil {
		m.existing = map[string]map[string]bool{}
	}
	if m.existing[opt.CareNeedItemID] == nil {
		m.existing[opt.CareNeedItemID] = map[string]bool{}
	}
	due := opt.DueDate.Format("2006-01-02")
	inserted := !m.existing[opt.CareNeedItemID][due]
	m.existing[opt.CareNeedItemID][due] = true
	m.upserted = append(m.upserted, opt)

	task := model.CareTask{
		ID:             fmt.Sprintf("task-%s-%s", opt.CareNeedItemID, due),
		CareNeedItemID: opt.CareNeedItemID,
		OrganizationID: opt.OrganizationID,
		PersonID:       opt.PersonID,
		Title:          opt.Title,
		DueDate:        opt.DueDate,
		Status:         model.TaskStatusScheduled,
		ScheduleType:   opt.ScheduleType,
		StartAt:        opt.StartAt,
		EndAt:          opt.EndAt,
	}
	return task, inserted, nil
}

func (m *mockTaskRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.CareTask, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.CareTask{}, nil
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.CareTask, int, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockTaskRepo) LatestDueDate(ctx context.Context, itemID string) (time.Time, bool, error) {
	var latest time.Time
	for due := range m.existing[itemID] {
		d, err := time.Parse("2006-01-02", due)
		if err != nil {
			return time.Time{}, false, err
		}
		if d.After(latest) {
			latest = d
		}
	}
	if latest.IsZero() {
		return time.Time{}, false, nil
	}
	return latest, true, nil
}

func (m *mockTaskRepo) CompleteTask(ctx context.Context, opt repo.CompleteTaskOptions) (model.CareTask, error) {
	if m.completeFunc != nil {
		return m.completeFunc(opt)
	}
	return model.CareTask{}, nil
}

func (m *mockTaskRepo) MarkOverdue(ctx context.Context, opt repo.MarkOverdueOptions) (int, error) {
	if m.markOverdueFunc != nil {
		return m.markOverdueFunc(opt)
	}
	return 0, nil
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weeklyItem(id string) model.CareNeedItem {
	return model.CareNeedItem{
		ID:             id,
		OrganizationID: "org-1",
		PersonID:       "person-1",
		Name:           "Change bandage",
		Status:         model.ItemStatusActive,
		Rule: model.RecurrenceRule{
			IntervalType:  model.IntervalWeekly,
			IntervalValue: 1,
			StartDate:     date(2024, 6, 1),
		},
		ScheduleType: model.ScheduleAllDay,
	}
}
