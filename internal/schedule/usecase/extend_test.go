package usecase_test

import (
	"context"
	"testing"

	careneedRepo "care-coordination/internal/careneed/repository"
	"care-coordination/internal/model"
	"care-coordination/internal/schedule"
	"care-coordination/internal/schedule/usecase"
)

func TestExtend(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{OrganizationID: "org-1", UserID: "user-1", Role: model.RoleAdmin}

	t.Run("non-recurring item", func(t *testing.T) {
		item := weeklyItem("item-1")
		item.Rule = model.RecurrenceRule{IntervalType: model.IntervalOneTime, StartDate: date(2024, 6, 1)}
		itemRepo := &mockItemRepo{
			getOneFunc: func(opt careneedRepo.GetOneItemOptions) (model.CareNeedItem, error) {
				return item, nil
			},
		}
		uc := usecase.New(&mockLogger{}, &mockTaskRepo{}, itemRepo, nil, testCfg, fixedNow)

		_, err := uc.Extend(ctx, sc, schedule.ExtendInput{ItemID: "item-1"})
		if err != schedule.ErrItemNotRecurring {
			t.Fatalf("expected ErrItemNotRecurring, got %v", err)
		}
	})

	t.Run("continues past the latest task without duplicating", func(t *testing.T) {
		itemRepo := &mockItemRepo{
			getOneFunc: func(opt careneedRepo.GetOneItemOptions) (model.CareNeedItem, error) {
				return weeklyItem("item-1"), nil
			},
		}
		taskRepo := &mockTaskRepo{
			existing: map[string]map[string]bool{
				"item-1": {"2024-06-01": true, "2024-06-08": true},
			},
		}
		uc := usecase.New(&mockLogger{}, taskRepo, itemRepo, nil, testCfg, fixedNow)

		end := date(2024, 6, 29)
		output, err := uc.Extend(ctx, sc, schedule.ExtendInput{ItemID: "item-1", NewEndDate: &end})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 06-15, 06-22, 06-29: everything through 06-08 already exists.
		if output.Upserts != 3 {
			t.Fatalf("expected 3 upserts, got %d", output.Upserts)
		}
		if !output.From.Equal(date(2024, 6, 15)) {
			t.Errorf("from: got %v", output.From)
		}
		for _, opt := range taskRepo.upserted {
			if opt.DueDate.Before(date(2024, 6, 15)) {
				t.Errorf("re-upserted an existing date %v", opt.DueDate)
			}
		}
	})

	t.Run("default horizon runs from today", func(t *testing.T) {
		itemRepo := &mockItemRepo{
			getOneFunc: func(opt careneedRepo.GetOneItemOptions) (model.CareNeedItem, error) {
				return weeklyItem("item-1"), nil
			},
		}
		taskRepo := &mockTaskRepo{}
		uc := usecase.New(&mockLogger{}, taskRepo, itemRepo, nil, testCfg, fixedNow)

		output, err := uc.Extend(ctx, sc, schedule.ExtendInput{ItemID: "item-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// fixedNow is 2024-06-15; six months out is 2024-12-15.
		if !output.To.Equal(date(2024, 12, 15)) {
			t.Errorf("to: got %v", output.To)
		}
		// No tasks exist yet, so extension starts at the rule start.
		if !output.From.Equal(date(2024, 6, 1)) {
			t.Errorf("from: got %v", output.From)
		}
		if output.Upserts == 0 {
			t.Error("expected upserts within the horizon")
		}
	})

	t.Run("nothing to do when horizon is behind", func(t *testing.T) {
		itemRepo := &mockItemRepo{
			getOneFunc: func(opt careneedRepo.GetOneItemOptions) (model.CareNeedItem, error) {
				return weeklyItem("item-1"), nil
			},
		}
		taskRepo := &mockTaskRepo{
			existing: map[string]map[string]bool{
				"item-1": {"2025-06-07": true},
			},
		}
		uc := usecase.New(&mockLogger{}, taskRepo, itemRepo, nil, testCfg, fixedNow)

		end := date(2025, 1, 1)
		output, err := uc.Extend(ctx, sc, schedule.ExtendInput{ItemID: "item-1", NewEndDate: &end})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Upserts != 0 {
			t.Errorf("expected 0 upserts, got %d", output.Upserts)
		}
	})
}

func TestEnsureHorizon(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{OrganizationID: "org-1", Role: model.RoleAdmin}

	t.Run("extends only items with gaps", func(t *testing.T) {
		covered := weeklyItem("item-covered")
		gap := weeklyItem("item-gap")
		itemRepo := &mockItemRepo{
			listFunc: func(opt careneedRepo.ListItemsOptions) ([]model.CareNeedItem, int, error) {
				if !opt.OpenEndedOnly {
					t.Error("expected OpenEndedOnly listing")
				}
				return []model.CareNeedItem{covered, gap}, 2, nil
			},
		}
		taskRepo := &mockTaskRepo{
			existing: map[string]map[string]bool{
				// item-covered already reaches past the horizon.
				"item-covered": {"2025-06-07": true},
				"item-gap":     {"2024-06-08": true},
			},
		}
		uc := usecase.New(&mockLogger{}, taskRepo, itemRepo, nil, testCfg, fixedNow)

		output, err := uc.EnsureHorizon(ctx, sc, schedule.EnsureHorizonInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Checked != 2 {
			t.Errorf("checked: got %d, want 2", output.Checked)
		}
		if output.Extended != 1 {
			t.Errorf("extended: got %d, want 1", output.Extended)
		}
		// item-gap continues weekly from 06-15 through 12-15: 27 dates.
		if output.Upserts != 27 {
			t.Errorf("upserts: got %d, want 27", output.Upserts)
		}
	})
}
