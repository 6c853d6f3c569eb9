package careneed

import (
	"github.com/shopspring/decimal"

	"care-coordination/internal/model"
)

// --- UseCase Inputs ---

// CreateItemInput carries everything needed to register a care need.
type CreateItemInput struct {
	PersonID string
	Name     string
	Category string

	Rule         model.RecurrenceRule
	ScheduleType model.ScheduleType
	TimeWindow   *model.TimeWindow

	PurchaseCost   decimal.Decimal
	OccurrenceCost decimal.Decimal
	BudgetCost     decimal.Decimal

	// Budgets may contain repeated years; the last entry for a year wins.
	Budgets []model.BudgetEntry
}

type ListItemsInput struct {
	PersonID string
	Status   model.ItemStatus
	Limit    int
	Offset   int
}

// UpdateItemInput is a partial update: nil pointers (and empty strings
// for Name/Category) leave the current value in place.
type UpdateItemInput struct {
	ID string

	Name     string
	Category string
	Status   model.ItemStatus

	Rule         *model.RecurrenceRule
	ScheduleType model.ScheduleType
	TimeWindow   *model.TimeWindow

	PurchaseCost   *decimal.Decimal
	OccurrenceCost *decimal.Decimal
	BudgetCost     *decimal.Decimal

	// Budgets replaces the full year set when non-nil.
	Budgets []model.BudgetEntry
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item model.CareNeedItem
}

type ListItemsOutput struct {
	Items  []model.CareNeedItem
	Total  int
	Limit  int
	Offset int
}

type DetailItemOutput struct {
	Item model.CareNeedItem
}

type UpdateItemOutput struct {
	Item model.CareNeedItem
}
