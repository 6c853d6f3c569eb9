package budget

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarningLevel is a closed set of budget warning tiers.
type WarningLevel string

const (
	WarningNone    WarningLevel = "none"
	WarningLight   WarningLevel = "light"
	WarningMedium  WarningLevel = "medium"
	WarningSerious WarningLevel = "serious"
)

// Severity orders warning levels for sorting; higher is more urgent.
func (w WarningLevel) Severity() int {
	switch w {
	case WarningSerious:
		return 3
	case WarningMedium:
		return 2
	case WarningLight:
		return 1
	default:
		return 0
	}
}

// Reason codes attached to warnings.
const (
	ReasonExceedsBudget    = "exceeds_budget"
	ReasonAbove80Percent   = "above_80_percent"
	ReasonProjectedOverrun = "projected_overrun"
	ReasonNoBudgetSet      = "no_budget_set"
)

type Warning struct {
	Level  WarningLevel
	Reason string
}

// ItemReport is one care-need item's annual budget line.
type ItemReport struct {
	ItemID   string
	Name     string
	Category string

	AnnualBudget decimal.Decimal
	Spent        decimal.Decimal
	Expected     decimal.Decimal
	Balance      decimal.Decimal
	Warning      Warning
}

// CategoryReport rolls its items up bottom-up: the category budget is
// the sum of its items' year budgets, never a separately stored figure.
type CategoryReport struct {
	Category string

	AnnualBudget decimal.Decimal
	Spent        decimal.Decimal
	Expected     decimal.Decimal
	Balance      decimal.Decimal
	Warning      Warning

	Items []ItemReport
}

// Report is the per-person, per-year budget rollup.
type Report struct {
	PersonID string
	Year     int

	AnnualBudget decimal.Decimal
	Spent        decimal.Decimal
	Expected     decimal.Decimal
	Balance      decimal.Decimal
	Warning      Warning

	Categories []CategoryReport

	GeneratedAt time.Time
}

type ReportInput struct {
	PersonID string
	Year     int
}

type ReportOutput struct {
	Report Report
	// Cached reports may trail recent completions by up to the cache
	// TTL.
	Cached bool
}
