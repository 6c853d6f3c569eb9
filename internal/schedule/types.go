package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"care-coordination/internal/model"
)

// --- UseCase Inputs ---

// GenerateInput materializes tasks for one item inside a window. Nil
// window bounds fall back to the item's start date and the configured
// default window length.
type GenerateInput struct {
	ItemID      string
	WindowStart *time.Time
	WindowEnd   *time.Time
}

// ExtendInput pushes an item's materialized tasks further into the
// future. Either a concrete NewEndDate or a horizon in months; when
// both are zero the configured default horizon applies.
type ExtendInput struct {
	ItemID        string
	HorizonMonths int
	NewEndDate    *time.Time
}

// EnsureHorizonInput overrides the rolling horizon; zero uses the
// configured default.
type EnsureHorizonInput struct {
	HorizonDays int
}

type CompleteInput struct {
	TaskID      string
	CompletedBy string
	// Cost overrides the item's expected occurrence cost when set.
	Cost *decimal.Decimal
}

type ListTasksInput struct {
	ItemID   string
	PersonID string
	Status   model.TaskStatus
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// --- UseCase Outputs ---

type GenerateOutput struct {
	Item           model.CareNeedItem
	Upserts        int       // rows newly inserted this call
	TotalGenerated int       // occurrence dates the rule produced in the window
	WindowStart    time.Time
	WindowEnd      time.Time
}

type ExtendOutput struct {
	Upserts int
	From    time.Time
	To      time.Time
}

// EnsureHorizonOutput summarizes a horizon pass over the open-ended
// items of one organization.
type EnsureHorizonOutput struct {
	Checked  int
	Extended int
	Upserts  int
}

type SweepOutput struct {
	Updated int
}

type CompleteOutput struct {
	Task model.CareTask
}

type ListTasksOutput struct {
	Tasks  []model.CareTask
	Total  int
	Limit  int
	Offset int
}
