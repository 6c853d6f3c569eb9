package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"care-coordination/internal/careneed"
	repo "care-coordination/internal/careneed/repository"
	"care-coordination/internal/model"
	"care-coordination/pkg/recurrence"
)

// Create validates and persists a new care-need item.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input careneed.CreateItemInput) (careneed.CreateItemOutput, error) {
	if input.PersonID == "" {
		return careneed.CreateItemOutput{}, careneed.ErrPersonRequired
	}
	if input.Name == "" {
		return careneed.CreateItemOutput{}, careneed.ErrNameRequired
	}

	rule := input.Rule
	if err := uc.validateRule(&rule); err != nil {
		return careneed.CreateItemOutput{}, err
	}
	if err := validateWindow(input.ScheduleType, input.TimeWindow); err != nil {
		return careneed.CreateItemOutput{}, err
	}

	draft := model.CareNeedItem{Rule: rule, BudgetCost: input.BudgetCost}
	budgets, err := uc.dedupBudgets(draft, input.Budgets)
	if err != nil {
		return careneed.CreateItemOutput{}, err
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		OrganizationID: sc.OrganizationID,
		PersonID:       input.PersonID,
		Name:           input.Name,
		Category:       input.Category,
		Rule:           rule,
		ScheduleType:   input.ScheduleType,
		TimeWindow:     input.TimeWindow,
		PurchaseCost:   input.PurchaseCost,
		OccurrenceCost: input.OccurrenceCost,
		BudgetCost:     input.BudgetCost,
		Budgets:        budgets,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return careneed.CreateItemOutput{}, err
	}

	uc.l.Infof(ctx, "careneed.Create: item=%s person=%s type=%s", item.ID, item.PersonID, item.Rule.IntervalType)
	return careneed.CreateItemOutput{Item: item}, nil
}

// validateRule normalizes and checks a recurrence rule. JustPurchase
// without a start date gets "now" as its effective date.
func (uc *implUseCase) validateRule(rule *model.RecurrenceRule) error {
	switch rule.IntervalType {
	case model.IntervalJustPurchase:
		if rule.StartDate.IsZero() {
			rule.StartDate = recurrence.DateOnly(uc.now())
		}
		return nil
	case model.IntervalOneTime:
		if rule.StartDate.IsZero() {
			return careneed.ErrMissingStartDate
		}
		return nil
	case model.IntervalDaily, model.IntervalWeekly, model.IntervalMonthly, model.IntervalYearly:
		if rule.StartDate.IsZero() {
			return careneed.ErrMissingStartDate
		}
		if rule.IntervalValue < 1 {
			return careneed.ErrInvalidIntervalValue
		}
		return nil
	default:
		return careneed.ErrInvalidIntervalType
	}
}

func validateWindow(schedType model.ScheduleType, window *model.TimeWindow) error {
	if schedType != model.ScheduleTimed {
		return nil
	}
	if window == nil {
		return careneed.ErrInvalidTimeWindow
	}
	if err := window.Validate(); err != nil {
		return careneed.ErrInvalidTimeWindow
	}
	return nil
}

// dedupBudgets collapses the entry list into a by-year map (last entry
// for a year wins) and rejects years outside the item's date span.
func (uc *implUseCase) dedupBudgets(item model.CareNeedItem, entries []model.BudgetEntry) (map[int]decimal.Decimal, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	first, last, ok := item.BudgetYearSpan(uc.now(), uc.horizonDays)
	budgets := make(map[int]decimal.Decimal, len(entries))
	for _, e := range entries {
		if ok && (e.Year < first || e.Year > last) {
			return nil, careneed.ErrBudgetYearOutOfRange
		}
		budgets[e.Year] = e.Amount
	}
	return budgets, nil
}
