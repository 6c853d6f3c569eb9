package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"care-coordination/pkg/recurrence"
)

// IntervalType of a recurrence rule. Values mirror pkg/recurrence.
type IntervalType string

const (
	IntervalJustPurchase IntervalType = "just_purchase"
	IntervalOneTime      IntervalType = "one_time"
	IntervalDaily        IntervalType = "daily"
	IntervalWeekly       IntervalType = "weekly"
	IntervalMonthly      IntervalType = "monthly"
	IntervalYearly       IntervalType = "yearly"
)

// ScheduleType distinguishes all-day tasks from time-windowed ones.
type ScheduleType string

const (
	ScheduleAllDay ScheduleType = "all_day"
	ScheduleTimed  ScheduleType = "timed"
)

// ItemStatus of a care-need item.
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusReturned ItemStatus = "returned"
)

// RecurrenceRule is the declarative schedule embedded in a care-need item.
type RecurrenceRule struct {
	IntervalType    IntervalType
	IntervalValue   int        // positive step; ignored for JustPurchase/OneTime
	StartDate       time.Time  // zero value = unset
	EndDate         *time.Time // inclusive, nil = none
	OccurrenceCount int        // 0 = none
}

// ToRecurrence converts to the pure expansion rule.
func (r RecurrenceRule) ToRecurrence() recurrence.Rule {
	return recurrence.Rule{
		Type:            recurrence.IntervalType(r.IntervalType),
		Interval:        r.IntervalValue,
		Start:           r.StartDate,
		End:             r.EndDate,
		OccurrenceLimit: r.OccurrenceCount,
	}
}

// Stepping reports whether the rule generates repeated occurrences.
func (r RecurrenceRule) Stepping() bool {
	switch r.IntervalType {
	case IntervalDaily, IntervalWeekly, IntervalMonthly, IntervalYearly:
		return true
	}
	return false
}

// OpenEnded reports whether a stepping rule has neither an end date nor
// an occurrence count, meaning it is materialized up to a rolling horizon.
func (r RecurrenceRule) OpenEnded() bool {
	return r.Stepping() && r.EndDate == nil && r.OccurrenceCount == 0
}

// TimeWindow is the HH:MM slot of a Timed item. An End at or before
// Start means the window crosses midnight into the next day.
type TimeWindow struct {
	Start string
	End   string
}

const clockLayout = "15:04"

// Validate checks both clock strings parse as HH:MM.
func (w TimeWindow) Validate() error {
	if _, err := time.Parse(clockLayout, w.Start); err != nil {
		return fmt.Errorf("invalid time window start %q: %w", w.Start, err)
	}
	if _, err := time.Parse(clockLayout, w.End); err != nil {
		return fmt.Errorf("invalid time window end %q: %w", w.End, err)
	}
	return nil
}

// Bounds combines the window with an occurrence date, yielding concrete
// start/end instants in UTC. The end rolls to the next day when it does
// not come after the start.
func (w TimeWindow) Bounds(due time.Time) (time.Time, time.Time, error) {
	start, err := time.Parse(clockLayout, w.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid time window start %q: %w", w.Start, err)
	}
	end, err := time.Parse(clockLayout, w.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid time window end %q: %w", w.End, err)
	}

	day := recurrence.DateOnly(due)
	startAt := day.Add(time.Duration(start.Hour())*time.Hour + time.Duration(start.Minute())*time.Minute)
	endAt := day.Add(time.Duration(end.Hour())*time.Hour + time.Duration(end.Minute())*time.Minute)
	if !endAt.After(startAt) {
		endAt = endAt.AddDate(0, 0, 1)
	}
	return startAt, endAt, nil
}

// BudgetEntry is a per-calendar-year budget amount on an item.
// The store keys entries by (item, year), so at most one exists per year.
type BudgetEntry struct {
	Year   int
	Amount decimal.Decimal
}

// CareNeedItem is a recurring (or one-off) care need for a person.
type CareNeedItem struct {
	ID             string
	OrganizationID string
	PersonID       string

	Name     string
	Category string
	Status   ItemStatus

	Rule         RecurrenceRule
	ScheduleType ScheduleType
	TimeWindow   *TimeWindow // only meaningful when ScheduleType is Timed

	PurchaseCost   decimal.Decimal // one-off purchase cost, recognized at StartDate
	OccurrenceCost decimal.Decimal // expected cost per occurrence
	BudgetCost     decimal.Decimal // legacy default annual budget

	Budgets []BudgetEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BudgetFor returns the item's budget amount for a year, falling back to
// the legacy BudgetCost when no entry exists.
func (i CareNeedItem) BudgetFor(year int) decimal.Decimal {
	for _, b := range i.Budgets {
		if b.Year == year {
			return b.Amount
		}
	}
	return i.BudgetCost
}

// BudgetYearSpan returns the inclusive range of calendar years the item
// can carry budgets for. Open-ended items span from the start year
// through the rolling horizon year derived from now.
func (i CareNeedItem) BudgetYearSpan(now time.Time, horizonDays int) (int, int, bool) {
	if i.Rule.StartDate.IsZero() {
		return 0, 0, false
	}
	first := i.Rule.StartDate.UTC().Year()

	if i.Rule.EndDate != nil {
		return first, i.Rule.EndDate.UTC().Year(), true
	}
	if i.Rule.OccurrenceCount > 0 {
		if last, ok := recurrence.LastOccurrence(i.Rule.ToRecurrence()); ok {
			return first, last.Year(), true
		}
		return first, first, true
	}
	if !i.Rule.Stepping() {
		return first, first, true
	}
	horizon := now.UTC().AddDate(0, 0, horizonDays)
	return first, horizon.Year(), true
}
