package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	repo "care-coordination/internal/budget/repository"
	careneedRepo "care-coordination/internal/careneed/repository"
	"care-coordination/internal/model"
)

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
	listFunc  func(opt careneedRepo.ListItemsOptions) ([]model.CareNeedItem, int, error)
	listCalls int
}

func (m *mockItemRepo) CreateItem(ctx context.Context, opt careneedRepo.CreateItemOptions) (model.CareNeedItem, error) {
	return model.CareNeedItem{}, nil
}

func (m *mockItemRepo) GetOneItem(ctx context.Context, opt careneedRepo.GetOneItemOptions) (model.CareNeedItem, error) {
	return model.CareNeedItem{}, nil
}

func (m *mockItemRepo) ListItems(ctx context.Context, opt careneedRepo.ListItemsOptions) ([]model.CareNeedItem, int, error) {
	m.listCalls++
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockItemRepo) UpdateItem(ctx context.Context, opt careneedRepo.UpdateItemOptions) (model.CareNeedItem, error) {
	return model.CareNeedItem{}, nil
}

type mockSpendRepo struct {
	completed map[string]decimal.Decimal
	pending   map[string]int
}

func (m *mockSpendRepo) CompletedSpend(ctx context.Context, opt repo.SpendOptions) (map[string]decimal.Decimal, error) {
	return m.completed, nil
}

func (m *mockSpendRepo) PendingCounts(ctx context.Context, opt repo.SpendOptions) (map[string]int, error) {
	return m.pending, nil
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func activeItem(id, category string, budget2024 string) model.CareNeedItem {
	return model.CareNeedItem{
		ID:             id,
		OrganizationID: "org-1",
		PersonID:       "person-1",
		Name:           "Item " + id,
		Category:       category,
		Status:         model.ItemStatusActive,
		Rule: model.RecurrenceRule{
			IntervalType:  model.IntervalWeekly,
			IntervalValue: 1,
			StartDate:     time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		Budgets: []model.BudgetEntry{{Year: 2024, Amount: dec(budget2024)}},
	}
}
