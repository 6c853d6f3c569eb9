package repository

import "time"

// SpendOptions bounds an aggregation to one person's tasks due in
// [From, To).
type SpendOptions struct {
	OrganizationID string
	PersonID       string
	From           time.Time
	To             time.Time
}
