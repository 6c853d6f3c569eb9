package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository aggregates task spend for the budget domain. Item data
// itself comes from the care-need repository; this interface only
// covers the task-level sums the report needs.
type Repository interface {
	// CompletedSpend returns, per item, the summed cost of completed
	// tasks due inside the window. Tasks completed without a recorded
	// cost fall back to the item's occurrence cost.
	CompletedSpend(ctx context.Context, opt SpendOptions) (map[string]decimal.Decimal, error)
	// PendingCounts returns, per item, how many scheduled or missed
	// tasks are due inside the window.
	PendingCounts(ctx context.Context, opt SpendOptions) (map[string]int, error)
}
