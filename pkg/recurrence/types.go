package recurrence

import "time"

// IntervalType enumerates the supported recurrence interval kinds.
type IntervalType string

const (
	JustPurchase IntervalType = "just_purchase"
	OneTime      IntervalType = "one_time"
	Daily        IntervalType = "daily"
	Weekly       IntervalType = "weekly"
	Monthly      IntervalType = "monthly"
	Yearly       IntervalType = "yearly"
)

// MaxGeneratedDates bounds a single expansion. It is the only defense
// against unbounded generation (e.g. a zero interval), so it must not
// be removed or relaxed.
const MaxGeneratedDates = 10000

// Rule is a declarative recurrence description.
// At most one of End / OccurrenceLimit is expected to be authoritative;
// when both are absent the rule is open-ended.
type Rule struct {
	Type     IntervalType
	Interval int // positive step in Type units; ignored for JustPurchase/OneTime

	Start time.Time  // zero value = unset
	End   *time.Time // inclusive hard stop, nil = none

	OccurrenceLimit int // cap on generated instances, 0 = none
}

// Window bounds the dates returned by Expand. Either side may be nil,
// meaning unbounded on that side. The window filters output only:
// occurrence counting always runs from Rule.Start.
type Window struct {
	Start *time.Time
	End   *time.Time
}
