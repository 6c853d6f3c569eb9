package repository

import (
	"github.com/shopspring/decimal"

	"care-coordination/internal/model"
)

// CreateItemOptions holds parameters for inserting a new CareNeedItem.
// Budgets is keyed by year: the map is the structural guarantee that at
// most one budget entry exists per year.
type CreateItemOptions struct {
	OrganizationID string
	PersonID       string
	Name           string
	Category       string

	Rule         model.RecurrenceRule
	ScheduleType model.ScheduleType
	TimeWindow   *model.TimeWindow

	PurchaseCost   decimal.Decimal
	OccurrenceCost decimal.Decimal
	BudgetCost     decimal.Decimal

	Budgets map[int]decimal.Decimal
}

// GetOneItemOptions holds filter parameters for fetching a single item.
// All non-empty fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID             string
	OrganizationID string
	PersonID       string
}

// ListItemsOptions holds filter and pagination parameters.
// Limit <= 0 disables pagination (used by batch operations).
type ListItemsOptions struct {
	OrganizationID string
	PersonID       string
	PersonIDs      []string // visibility restriction, nil = no restriction
	Status         model.ItemStatus

	// OpenEndedOnly keeps only Active-horizon candidates: stepping rules
	// with neither an end date nor an occurrence count.
	OpenEndedOnly bool

	Limit  int
	Offset int
}

// UpdateItemOptions replaces the mutable fields of an existing item.
// The usecase merges partial input into the stored item first, so every
// field here is written as-is. A nil Budgets map leaves budgets alone.
type UpdateItemOptions struct {
	ID             string
	OrganizationID string

	Name     string
	Category string
	Status   model.ItemStatus

	Rule         model.RecurrenceRule
	ScheduleType model.ScheduleType
	TimeWindow   *model.TimeWindow

	PurchaseCost   decimal.Decimal
	OccurrenceCost decimal.Decimal
	BudgetCost     decimal.Decimal

	Budgets map[int]decimal.Decimal
}
