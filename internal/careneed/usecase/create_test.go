package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"care-coordination/internal/careneed"
	repo "care-coordination/internal/careneed/repository"
	"care-coordination/internal/careneed/usecase"
	"care-coordination/internal/model"
)

func TestCreate(t *testing.T) {
	sc := model.Scope{OrganizationID: "org-1", UserID: "user-1"}

	t.Run("Missing Person", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{}, 730, fixedNow)
		_, err := uc.Create(context.Background(), sc, careneed.CreateItemInput{Name: "Diapers"})
		if !errors.Is(err, careneed.ErrPersonRequired) {
			t.Errorf("expected ErrPersonRequired, got %v", err)
		}
	})

	t.Run("Missing Start Date For Stepping Rule", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{}, 730, fixedNow)
		_, err := uc.Create(context.Background(), sc, careneed.CreateItemInput{
			PersonID: "person-1",
			Name:     "Physio session",
			Rule:     model.RecurrenceRule{IntervalType: model.IntervalWeekly, IntervalValue: 1},
		})
		if !errors.Is(err, careneed.ErrMissingStartDate) {
			t.Errorf("expected ErrMissingStartDate, got %v", err)
		}
	})

	t.Run("Invalid Interval Type", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{}, 730, fixedNow)
		_, err := uc.Create(context.Background(), sc, careneed.CreateItemInput{
			PersonID: "person-1",
			Name:     "Physio session",
			Rule:     model.RecurrenceRule{IntervalType: "fortnightly"},
		})
		if !errors.Is(err, careneed.ErrInvalidIntervalType) {
			t.Errorf("expected ErrInvalidIntervalType, got %v", err)
		}
	})

	t.Run("Invalid Interval Value", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{}, 730, fixedNow)
		_, err := uc.Create(context.Background(), sc, careneed.CreateItemInput{
			PersonID: "person-1",
			Name:     "Physio session",
			Rule: model.RecurrenceRule{
				IntervalType:  model.IntervalDaily,
				IntervalValue: 0,
				StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		})
		if !errors.Is(err, careneed.ErrInvalidIntervalValue) {
			t.Errorf("expected ErrInvalidIntervalValue, got %v", err)
		}
	})

	t.Run("Timed Without Window", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{}, 730, fixedNow)
		_, err := uc.Create(context.Background(), sc, careneed.CreateItemInput{
			PersonID:     "person-1",
			Name:         "Day care",
			ScheduleType: model.ScheduleTimed,
			Rule: model.RecurrenceRule{
				IntervalType:  model.IntervalWeekly,
				IntervalValue: 1,
				StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		})
		if !errors.Is(err, careneed.ErrInvalidTimeWindow) {
			t.Errorf("expected ErrInvalidTimeWindow, got %v", err)
		}
	})

	t.Run("Malformed Window", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{}, 730, fixedNow)
		_, err := uc.Create(context.Background(), sc, careneed.CreateItemInput{
			PersonID:     "person-1",
			Name:         "Day care",
			ScheduleType: model.ScheduleTimed,
			TimeWindow:   &model.TimeWindow{Start: "9am", End: "17:00"},
			Rule: model.RecurrenceRule{
				IntervalType:  model.IntervalWeekly,
				IntervalValue: 1,
				StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		})
		if !errors.Is(err, careneed.ErrInvalidTimeWindow) {
			t.Errorf("expected ErrInvalidTimeWindow, got %v", err)
		}
	})

	t.Run("JustPurchase Defaults Start Date To Now", func(t *testing.T) {
		var captured repo.CreateItemOptions
		mRepo := &mockRepo{
			createFunc: func(opt repo.CreateItemOptions) (model.CareNeedItem, error) {
				captured = opt
				return model.CareNeedItem{ID: "item-1"}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, mRepo, 730, fixedNow)
		_, err := uc.Create(context.Background(), sc, careneed.CreateItemInput{
			PersonID: "person-1",
			Name:     "Wheelchair",
			Rule:     model.RecurrenceRule{IntervalType: model.IntervalJustPurchase},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		if !captured.Rule.StartDate.Equal(want) {
			t.Errorf("expected defaulted start date %s, got %s", want, captured.Rule.StartDate)
		}
	})

	t.Run("Budget Years Dedup Last Wins", func(t *testing.T) {
		var captured repo.CreateItemOptions
		mRepo := &mockRepo{
			createFunc: func(opt repo.CreateItemOptions) (model.CareNeedItem, error) {
				captured = opt
				return model.CareNeedItem{ID: "item-1"}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, mRepo, 730, fixedNow)
		_, err := uc.Create(context.Background(), sc, careneed.CreateItemInput{
			PersonID: "person-1",
			Name:     "Physio session",
			Rule: model.RecurrenceRule{
				IntervalType:  model.IntervalWeekly,
				IntervalValue: 1,
				StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			Budgets: []model.BudgetEntry{
				{Year: 2024, Amount: decimal.NewFromInt(500)},
				{Year: 2025, Amount: decimal.NewFromInt(600)},
				{Year: 2024, Amount: decimal.NewFromInt(750)},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(captured.Budgets) != 2 {
			t.Fatalf("expected 2 deduped years, got %d", len(captured.Budgets))
		}
		if !captured.Budgets[2024].Equal(decimal.NewFromInt(750)) {
			t.Errorf("expected last write to win for 2024, got %s", captured.Budgets[2024])
		}
	})

	t.Run("Budget Year Outside Span", func(t *testing.T) {
		end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
		uc := usecase.New(&mockLogger{}, &mockRepo{}, 730, fixedNow)
		_, err := uc.Create(context.Background(), sc, careneed.CreateItemInput{
			PersonID: "person-1",
			Name:     "Physio session",
			Rule: model.RecurrenceRule{
				IntervalType:  model.IntervalWeekly,
				IntervalValue: 1,
				StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				EndDate:       &end,
			},
			Budgets: []model.BudgetEntry{{Year: 2026, Amount: decimal.NewFromInt(500)}},
		})
		if !errors.Is(err, careneed.ErrBudgetYearOutOfRange) {
			t.Errorf("expected ErrBudgetYearOutOfRange, got %v", err)
		}
	})

	t.Run("Open Ended Span Reaches Horizon Year", func(t *testing.T) {
		// now=2024-06-15 with a 730-day horizon admits 2026 budgets.
		mRepo := &mockRepo{
			createFunc: func(opt repo.CreateItemOptions) (model.CareNeedItem, error) {
				return model.CareNeedItem{ID: "item-1"}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, mRepo, 730, fixedNow)
		_, err := uc.Create(context.Background(), sc, careneed.CreateItemInput{
			PersonID: "person-1",
			Name:     "Physio session",
			Rule: model.RecurrenceRule{
				IntervalType:  model.IntervalWeekly,
				IntervalValue: 1,
				StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			Budgets: []model.BudgetEntry{{Year: 2026, Amount: decimal.NewFromInt(500)}},
		})
		if err != nil {
			t.Errorf("expected horizon-year budget to be accepted, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	sc := model.Scope{OrganizationID: "org-1"}

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{}, 730, fixedNow)
		_, err := uc.Update(context.Background(), sc, careneed.UpdateItemInput{ID: "nope"})
		if !errors.Is(err, careneed.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("Merges Partial Input", func(t *testing.T) {
		existing := model.CareNeedItem{
			ID:             "item-1",
			OrganizationID: "org-1",
			PersonID:       "person-1",
			Name:           "Physio session",
			Category:       "therapy",
			Status:         model.ItemStatusActive,
			ScheduleType:   model.ScheduleAllDay,
			Rule: model.RecurrenceRule{
				IntervalType:  model.IntervalWeekly,
				IntervalValue: 1,
				StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		}
		var captured repo.UpdateItemOptions
		mRepo := &mockRepo{
			getOneFunc: func(opt repo.GetOneItemOptions) (model.CareNeedItem, error) {
				return existing, nil
			},
			updateFunc: func(opt repo.UpdateItemOptions) (model.CareNeedItem, error) {
				captured = opt
				return existing, nil
			},
		}
		uc := usecase.New(&mockLogger{}, mRepo, 730, fixedNow)
		_, err := uc.Update(context.Background(), sc, careneed.UpdateItemInput{
			ID:   "item-1",
			Name: "Physio session (long)",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.Name != "Physio session (long)" {
			t.Errorf("expected updated name, got %q", captured.Name)
		}
		if captured.Category != "therapy" {
			t.Errorf("expected category preserved, got %q", captured.Category)
		}
		if captured.Budgets != nil {
			t.Errorf("expected budgets untouched on partial update")
		}
	})
}
