package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaskStatus of a materialized care task.
type TaskStatus string

const (
	TaskStatusScheduled TaskStatus = "scheduled"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusMissed    TaskStatus = "missed"
	TaskStatusSkipped   TaskStatus = "skipped"
	TaskStatusCancelled TaskStatus = "cancelled"
)

// CareTask is one persisted occurrence of a care-need item.
// (CareNeedItemID, DueDate) is unique: the store enforces it, and the
// materializer relies on it for idempotency.
type CareTask struct {
	ID             string
	CareNeedItemID string
	OrganizationID string
	PersonID       string

	Title   string
	DueDate time.Time // UTC midnight
	Status  TaskStatus

	ScheduleType ScheduleType
	StartAt      *time.Time // only set for Timed tasks
	EndAt        *time.Time

	Cost        *decimal.Decimal // set once on completion
	AssignedTo  string
	CompletedBy string

	CreatedAt time.Time
	UpdatedAt time.Time
}
