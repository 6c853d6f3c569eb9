package usecase_test

import (
	"context"
	"time"

	repo "care-coordination/internal/careneed/repository"
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

type mockRepo struct {
	createFunc func(opt repo.CreateItemOptions) (model.CareNeedItem, error)
	getOneFunc func(opt repo.GetOneItemOptions) (model.CareNeedItem, error)
	listFunc   func(opt repo.ListItemsOptions) ([]model.CareNeedItem, int, error)
	updateFunc func(opt repo.UpdateItemOptions) (model.CareNeedItem, error)
}

func (m *mockRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.CareNeedItem, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.CareNeedItem{ID: "item-1"}, nil
}

func (m *mockRepo) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.CareNeedItem, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.CareNeedItem{}, nil
}

func (m *mockRepo) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.CareNeedItem, int, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockRepo) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.CareNeedItem, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return model.CareNeedItem{}, nil
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}
