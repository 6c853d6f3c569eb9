package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"care-coordination/internal/careneed"
	repo "care-coordination/internal/careneed/repository"
	"care-coordination/internal/model"
)

// Detail returns a single item visible to the caller's organization.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (careneed.DetailItemOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id, OrganizationID: sc.OrganizationID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return careneed.DetailItemOutput{}, err
	}
	if item.ID == "" {
		return careneed.DetailItemOutput{}, careneed.ErrItemNotFound
	}
	return careneed.DetailItemOutput{Item: item}, nil
}

// List returns a page of items in the caller's scope.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input careneed.ListItemsInput) (careneed.ListItemsOutput, error) {
	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		OrganizationID: sc.OrganizationID,
		PersonID:       input.PersonID,
		PersonIDs:      sc.VisiblePersons(),
		Status:         input.Status,
		Limit:          input.Limit,
		Offset:         input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return careneed.ListItemsOutput{}, err
	}
	return careneed.ListItemsOutput{
		Items:  items,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Update merges the partial input into the stored item, re-validates,
// and persists. Already-materialized tasks are left alone: future
// generation and extension calls pick up the new rule.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input careneed.UpdateItemInput) (careneed.UpdateItemOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID, OrganizationID: sc.OrganizationID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return careneed.UpdateItemOutput{}, err
	}
	if item.ID == "" {
		return careneed.UpdateItemOutput{}, careneed.ErrItemNotFound
	}

	if input.Name != "" {
		item.Name = input.Name
	}
	if input.Category != "" {
		item.Category = input.Category
	}
	if input.Status != "" {
		item.Status = input.Status
	}
	if input.Rule != nil {
		item.Rule = *input.Rule
	}
	if input.ScheduleType != "" {
		item.ScheduleType = input.ScheduleType
	}
	if input.TimeWindow != nil {
		item.TimeWindow = input.TimeWindow
	}
	if input.PurchaseCost != nil {
		item.PurchaseCost = *input.PurchaseCost
	}
	if input.OccurrenceCost != nil {
		item.OccurrenceCost = *input.OccurrenceCost
	}
	if input.BudgetCost != nil {
		item.BudgetCost = *input.BudgetCost
	}

	if err := uc.validateRule(&item.Rule); err != nil {
		return careneed.UpdateItemOutput{}, err
	}
	if err := validateWindow(item.ScheduleType, item.TimeWindow); err != nil {
		return careneed.UpdateItemOutput{}, err
	}

	opt := repo.UpdateItemOptions{
		ID:             item.ID,
		OrganizationID: sc.OrganizationID,
		Name:           item.Name,
		Category:       item.Category,
		Status:         item.Status,
		Rule:           item.Rule,
		ScheduleType:   item.ScheduleType,
		TimeWindow:     item.TimeWindow,
		PurchaseCost:   item.PurchaseCost,
		OccurrenceCost: item.OccurrenceCost,
		BudgetCost:     item.BudgetCost,
	}
	if input.Budgets != nil {
		budgets, dedupErr := uc.dedupBudgets(item, input.Budgets)
		if dedupErr != nil {
			return careneed.UpdateItemOutput{}, dedupErr
		}
		if budgets == nil {
			// Non-nil empty input clears the year set.
			budgets = map[int]decimal.Decimal{}
		}
		opt.Budgets = budgets
	}

	updated, err := uc.repo.UpdateItem(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return careneed.UpdateItemOutput{}, err
	}
	if updated.ID == "" {
		return careneed.UpdateItemOutput{}, careneed.ErrItemNotFound
	}
	return careneed.UpdateItemOutput{Item: updated}, nil
}
