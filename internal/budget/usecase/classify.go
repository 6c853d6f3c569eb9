package usecase

import (
	"github.com/shopspring/decimal"

	"care-coordination/internal/budget"
)

var lightThreshold = decimal.NewFromFloat(0.8)

// Classify applies the three-tier warning rules. With a positive
// budget: overspend is serious, 80% used is light, and a projected
// overrun (spent plus expected exceeding budget) is medium. Any spend
// against a zero budget is medium.
func Classify(annualBudget, spent, expected decimal.Decimal) budget.Warning {
	if annualBudget.IsPositive() {
		switch {
		case spent.GreaterThan(annualBudget):
			return budget.Warning{Level: budget.WarningSerious, Reason: budget.ReasonExceedsBudget}
		case spent.GreaterThanOrEqual(annualBudget.Mul(lightThreshold)):
			return budget.Warning{Level: budget.WarningLight, Reason: budget.ReasonAbove80Percent}
		case spent.Add(expected).GreaterThan(annualBudget):
			return budget.Warning{Level: budget.WarningMedium, Reason: budget.ReasonProjectedOverrun}
		}
		return budget.Warning{Level: budget.WarningNone}
	}
	if spent.IsPositive() {
		return budget.Warning{Level: budget.WarningMedium, Reason: budget.ReasonNoBudgetSet}
	}
	return budget.Warning{Level: budget.WarningNone}
}
