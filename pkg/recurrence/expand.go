// Package recurrence expands declarative recurrence rules into concrete
// occurrence dates. It is pure: no I/O, no clock reads, all dates are
// normalized to UTC midnight.
package recurrence

import "time"

// Expand returns the ordered occurrence dates of rule inside window.
//
// OneTime yields its start date when it falls inside the window and
// before the rule's end. Stepping types walk forward from the start
// date one step at a time; generation stops when the occurrence limit
// is reached, the rule end or window end is passed, or
// MaxGeneratedDates dates have been produced.
//
// JustPurchase, unknown interval types, and stepping rules without a
// start date all yield an empty result rather than an error.
func Expand(rule Rule, window Window) []time.Time {
	switch rule.Type {
	case OneTime:
		return expandOneTime(rule, window)
	case Daily, Weekly, Monthly, Yearly:
		return expandStepping(rule, window)
	default:
		// JustPurchase has no occurrences; unknown types are ignored.
		return nil
	}
}

func expandOneTime(rule Rule, window Window) []time.Time {
	if rule.Start.IsZero() {
		return nil
	}
	d := DateOnly(rule.Start)
	if rule.End != nil && d.After(DateOnly(*rule.End)) {
		return nil
	}
	if !inWindow(d, window) {
		return nil
	}
	return []time.Time{d}
}

func expandStepping(rule Rule, window Window) []time.Time {
	if rule.Start.IsZero() {
		return nil
	}

	var out []time.Time
	current := DateOnly(rule.Start)
	for generated := 0; generated < MaxGeneratedDates; generated++ {
		if rule.OccurrenceLimit > 0 && generated >= rule.OccurrenceLimit {
			break
		}
		if rule.End != nil && current.After(DateOnly(*rule.End)) {
			break
		}
		if window.End != nil && current.After(DateOnly(*window.End)) {
			break
		}
		if window.Start == nil || !current.Before(DateOnly(*window.Start)) {
			out = append(out, current)
		}
		current = Step(current, rule)
	}
	return out
}

// Step advances one recurrence interval from the given date, returning a
// new value. Month and year steps use time.AddDate, which normalizes
// month-end overflow forward (Jan 31 + 1 month = Mar 2/3); stepping is
// cumulative from the previous occurrence, matching expansion.
// Non-stepping types return the input unchanged.
func Step(from time.Time, rule Rule) time.Time {
	switch rule.Type {
	case Daily:
		return from.AddDate(0, 0, rule.Interval)
	case Weekly:
		return from.AddDate(0, 0, 7*rule.Interval)
	case Monthly:
		return from.AddDate(0, rule.Interval, 0)
	case Yearly:
		return from.AddDate(rule.Interval, 0, 0)
	default:
		return from
	}
}

// LastOccurrence returns the final date a bounded rule produces, and
// false for rules that produce none. Open-ended rules report the last
// date before the generation cap, so callers should bound the rule (or
// window the expansion) before relying on this.
func LastOccurrence(rule Rule) (time.Time, bool) {
	dates := Expand(rule, Window{})
	if len(dates) == 0 {
		return time.Time{}, false
	}
	return dates[len(dates)-1], true
}

// DateOnly normalizes t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func inWindow(d time.Time, window Window) bool {
	if window.Start != nil && d.Before(DateOnly(*window.Start)) {
		return false
	}
	if window.End != nil && d.After(DateOnly(*window.End)) {
		return false
	}
	return true
}
