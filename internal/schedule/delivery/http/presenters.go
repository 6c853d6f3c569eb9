package http

import (
	"time"

	"github.com/shopspring/decimal"

	"care-coordination/internal/model"
	"care-coordination/internal/schedule"
	"care-coordination/pkg/response"
)

type generateReq struct {
	id string

	From string `json:"from"`
	To   string `json:"to"`
}

func (r generateReq) toInput() (schedule.GenerateInput, error) {
	input := schedule.GenerateInput{ItemID: r.id}

	var err error
	if input.WindowStart, err = datePtr(r.From); err != nil {
		return schedule.GenerateInput{}, errWrongBody
	}
	if input.WindowEnd, err = datePtr(r.To); err != nil {
		return schedule.GenerateInput{}, errWrongBody
	}
	return input, nil
}

type ensureHorizonReq struct {
	HorizonDays int `json:"horizon_days"`
}

func (r ensureHorizonReq) toInput() schedule.EnsureHorizonInput {
	return schedule.EnsureHorizonInput{HorizonDays: r.HorizonDays}
}

type extendReq struct {
	id string

	HorizonMonths int    `json:"horizon_months"`
	NewEndDate    string `json:"new_end_date"`
}

func (r extendReq) toInput() (schedule.ExtendInput, error) {
	input := schedule.ExtendInput{ItemID: r.id, HorizonMonths: r.HorizonMonths}

	var err error
	if input.NewEndDate, err = datePtr(r.NewEndDate); err != nil {
		return schedule.ExtendInput{}, errWrongBody
	}
	return input, nil
}

type completeReq struct {
	id string

	CompletedBy string           `json:"completed_by"`
	Cost        *decimal.Decimal `json:"cost"`
}

func (r completeReq) toInput() schedule.CompleteInput {
	return schedule.CompleteInput{
		TaskID:      r.id,
		CompletedBy: r.CompletedBy,
		Cost:        r.Cost,
	}
}

type listTasksReq struct {
	ItemID   string `form:"item_id"`
	PersonID string `form:"person_id"`
	Status   string `form:"status"`
	From     string `form:"from"`
	To       string `form:"to"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listTasksReq) toInput() (schedule.ListTasksInput, error) {
	limit := r.Limit
	if limit <= 0 {
		limit = 20
	}
	input := schedule.ListTasksInput{
		ItemID:   r.ItemID,
		PersonID: r.PersonID,
		Status:   model.TaskStatus(r.Status),
		Limit:    limit,
		Offset:   r.Offset,
	}

	var err error
	if input.From, err = datePtr(r.From); err != nil {
		return schedule.ListTasksInput{}, errWrongQuery
	}
	if input.To, err = datePtr(r.To); err != nil {
		return schedule.ListTasksInput{}, errWrongQuery
	}
	return input, nil
}

type generateResp struct {
	ItemID         string `json:"item_id"`
	Upserts        int    `json:"upserts"`
	TotalGenerated int    `json:"total_generated"`
	WindowStart    string `json:"window_start"`
	WindowEnd      string `json:"window_end"`
}

func newGenerateResp(output schedule.GenerateOutput) generateResp {
	return generateResp{
		ItemID:         output.Item.ID,
		Upserts:        output.Upserts,
		TotalGenerated: output.TotalGenerated,
		WindowStart:    output.WindowStart.Format(response.DateFormat),
		WindowEnd:      output.WindowEnd.Format(response.DateFormat),
	}
}

type extendResp struct {
	Upserts int    `json:"upserts"`
	From    string `json:"from"`
	To      string `json:"to"`
}

func newExtendResp(output schedule.ExtendOutput) extendResp {
	return extendResp{
		Upserts: output.Upserts,
		From:    output.From.Format(response.DateFormat),
		To:      output.To.Format(response.DateFormat),
	}
}

type ensureHorizonResp struct {
	Checked  int `json:"checked"`
	Extended int `json:"extended"`
	Upserts  int `json:"upserts"`
}

type sweepResp struct {
	Updated int `json:"updated"`
}

type taskResp struct {
	ID             string `json:"id"`
	CareNeedItemID string `json:"care_need_item_id"`
	OrganizationID string `json:"organization_id"`
	PersonID       string `json:"person_id"`

	Title   string `json:"title"`
	DueDate string `json:"due_date"`
	Status  string `json:"status"`

	ScheduleType string             `json:"schedule_type"`
	StartAt      *response.DateTime `json:"start_at,omitempty"`
	EndAt        *response.DateTime `json:"end_at,omitempty"`

	Cost        *decimal.Decimal `json:"cost,omitempty"`
	AssignedTo  string           `json:"assigned_to,omitempty"`
	CompletedBy string           `json:"completed_by,omitempty"`

	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newTaskResp(task model.CareTask) taskResp {
	resp := taskResp{
		ID:             task.ID,
		CareNeedItemID: task.CareNeedItemID,
		OrganizationID: task.OrganizationID,
		PersonID:       task.PersonID,
		Title:          task.Title,
		DueDate:        task.DueDate.Format(response.DateFormat),
		Status:         string(task.Status),
		ScheduleType:   string(task.ScheduleType),
		Cost:           task.Cost,
		AssignedTo:     task.AssignedTo,
		CompletedBy:    task.CompletedBy,
		CreatedAt:      response.DateTime(task.CreatedAt),
		UpdatedAt:      response.DateTime(task.UpdatedAt),
	}
	if task.StartAt != nil {
		dt := response.DateTime(*task.StartAt)
		resp.StartAt = &dt
	}
	if task.EndAt != nil {
		dt := response.DateTime(*task.EndAt)
		resp.EndAt = &dt
	}
	return resp
}

type taskListResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func newTaskListResp(output schedule.ListTasksOutput) taskListResp {
	resp := taskListResp{
		Tasks:  make([]taskResp, 0, len(output.Tasks)),
		Total:  output.Total,
		Limit:  output.Limit,
		Offset: output.Offset,
	}
	for _, task := range output.Tasks {
		resp.Tasks = append(resp.Tasks, newTaskResp(task))
	}
	return resp
}

func datePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(response.DateFormat, s)
	if err != nil {
		return nil, err
	}
	d = d.UTC()
	return &d, nil
}
