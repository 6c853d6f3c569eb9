package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"care-coordination/internal/model"
)

type UpsertTaskOptions struct {
	CareNeedItemID string
	OrganizationID string
	PersonID       string

	Title   string
	DueDate time.Time // normalized to UTC midnight by the caller

	ScheduleType model.ScheduleType
	StartAt      *time.Time
	EndAt        *time.Time

	AssignedTo string
}

// GetOneTaskOptions filters are combined with AND; empty fields are
// skipped. PersonIDs restricts visibility for staff callers.
type GetOneTaskOptions struct {
	ID             string
	OrganizationID string
	PersonIDs      []string
}

// ListTasksOptions filters are combined with AND. Limit <= 0 disables
// pagination. From/To bound the due date inclusively.
type ListTasksOptions struct {
	OrganizationID string
	CareNeedItemID string
	PersonID       string
	PersonIDs      []string
	Status         model.TaskStatus
	From           *time.Time
	To             *time.Time
	Limit          int
	Offset         int
}

type CompleteTaskOptions struct {
	ID             string
	OrganizationID string
	CompletedBy    string
	// Cost is recorded as the task's actual cost; nil keeps the column
	// as materialized.
	Cost *decimal.Decimal
}

type MarkOverdueOptions struct {
	OrganizationID string
	Before         time.Time // tasks due strictly before this date
}
