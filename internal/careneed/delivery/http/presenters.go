package http

import (
	"time"

	"github.com/shopspring/decimal"

	"care-coordination/internal/careneed"
	"care-coordination/internal/model"
	"care-coordination/pkg/response"
)

type ruleReq struct {
	IntervalType    string `json:"interval_type"`
	IntervalValue   int    `json:"interval_value"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	OccurrenceCount int    `json:"occurrence_count"`
}

func (r ruleReq) toModel() (model.RecurrenceRule, error) {
	rule := model.RecurrenceRule{
		IntervalType:    model.IntervalType(r.IntervalType),
		IntervalValue:   r.IntervalValue,
		OccurrenceCount: r.OccurrenceCount,
	}
	if r.StartDate != "" {
		start, err := time.Parse(response.DateFormat, r.StartDate)
		if err != nil {
			return model.RecurrenceRule{}, errWrongBody
		}
		rule.StartDate = start.UTC()
	}
	if r.EndDate != "" {
		end, err := time.Parse(response.DateFormat, r.EndDate)
		if err != nil {
			return model.RecurrenceRule{}, errWrongBody
		}
		end = end.UTC()
		rule.EndDate = &end
	}
	return rule, nil
}

type timeWindowReq struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type budgetEntryReq struct {
	Year   int             `json:"year"`
	Amount decimal.Decimal `json:"amount"`
}

type createReq struct {
	PersonID string `json:"person_id"`
	Name     string `json:"name"`
	Category string `json:"category"`

	Rule         ruleReq        `json:"rule"`
	ScheduleType string         `json:"schedule_type"`
	TimeWindow   *timeWindowReq `json:"time_window"`

	PurchaseCost   decimal.Decimal  `json:"purchase_cost"`
	OccurrenceCost decimal.Decimal  `json:"occurrence_cost"`
	BudgetCost     decimal.Decimal  `json:"budget_cost"`
	Budgets        []budgetEntryReq `json:"budgets"`
}

func (r createReq) toInput() (careneed.CreateItemInput, error) {
	rule, err := r.Rule.toModel()
	if err != nil {
		return careneed.CreateItemInput{}, err
	}

	input := careneed.CreateItemInput{
		PersonID:       r.PersonID,
		Name:           r.Name,
		Category:       r.Category,
		Rule:           rule,
		ScheduleType:   model.ScheduleType(r.ScheduleType),
		PurchaseCost:   r.PurchaseCost,
		OccurrenceCost: r.OccurrenceCost,
		BudgetCost:     r.BudgetCost,
	}
	if input.ScheduleType == "" {
		input.ScheduleType = model.ScheduleAllDay
	}
	if r.TimeWindow != nil {
		input.TimeWindow = &model.TimeWindow{Start: r.TimeWindow.Start, End: r.TimeWindow.End}
	}
	for _, b := range r.Budgets {
		input.Budgets = append(input.Budgets, model.BudgetEntry{Year: b.Year, Amount: b.Amount})
	}
	return input, nil
}

type listReq struct {
	PersonID string `form:"person_id"`
	Status   string `form:"status"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) toInput() careneed.ListItemsInput {
	limit := r.Limit
	if limit <= 0 {
		limit = 20
	}
	return careneed.ListItemsInput{
		PersonID: r.PersonID,
		Status:   model.ItemStatus(r.Status),
		Limit:    limit,
		Offset:   r.Offset,
	}
}

type updateReq struct {
	id string

	Name     string `json:"name"`
	Category string `json:"category"`
	Status   string `json:"status"`

	Rule         *ruleReq       `json:"rule"`
	ScheduleType string         `json:"schedule_type"`
	TimeWindow   *timeWindowReq `json:"time_window"`

	PurchaseCost   *decimal.Decimal `json:"purchase_cost"`
	OccurrenceCost *decimal.Decimal `json:"occurrence_cost"`
	BudgetCost     *decimal.Decimal `json:"budget_cost"`
	Budgets        []budgetEntryReq `json:"budgets"`
}

func (r updateReq) toInput() (careneed.UpdateItemInput, error) {
	input := careneed.UpdateItemInput{
		ID:             r.id,
		Name:           r.Name,
		Category:       r.Category,
		Status:         model.ItemStatus(r.Status),
		ScheduleType:   model.ScheduleType(r.ScheduleType),
		PurchaseCost:   r.PurchaseCost,
		OccurrenceCost: r.OccurrenceCost,
		BudgetCost:     r.BudgetCost,
	}
	if r.Rule != nil {
		rule, err := r.Rule.toModel()
		if err != nil {
			return careneed.UpdateItemInput{}, err
		}
		input.Rule = &rule
	}
	if r.TimeWindow != nil {
		input.TimeWindow = &model.TimeWindow{Start: r.TimeWindow.Start, End: r.TimeWindow.End}
	}
	if r.Budgets != nil {
		input.Budgets = make([]model.BudgetEntry, 0, len(r.Budgets))
		for _, b := range r.Budgets {
			input.Budgets = append(input.Budgets, model.BudgetEntry{Year: b.Year, Amount: b.Amount})
		}
	}
	return input, nil
}

type ruleResp struct {
	IntervalType    string  `json:"interval_type"`
	IntervalValue   int     `json:"interval_value"`
	StartDate       string  `json:"start_date"`
	EndDate         *string `json:"end_date,omitempty"`
	OccurrenceCount int     `json:"occurrence_count"`
}

type timeWindowResp struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type budgetEntryResp struct {
	Year   int             `json:"year"`
	Amount decimal.Decimal `json:"amount"`
}

type itemResp struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	PersonID       string `json:"person_id"`

	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status"`

	Rule         ruleResp        `json:"rule"`
	ScheduleType string          `json:"schedule_type"`
	TimeWindow   *timeWindowResp `json:"time_window,omitempty"`

	PurchaseCost   decimal.Decimal   `json:"purchase_cost"`
	OccurrenceCost decimal.Decimal   `json:"occurrence_cost"`
	BudgetCost     decimal.Decimal   `json:"budget_cost"`
	Budgets        []budgetEntryResp `json:"budgets"`

	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newItemResp(item model.CareNeedItem) itemResp {
	rule := ruleResp{
		IntervalType:    string(item.Rule.IntervalType),
		IntervalValue:   item.Rule.IntervalValue,
		OccurrenceCount: item.Rule.OccurrenceCount,
	}
	if !item.Rule.StartDate.IsZero() {
		rule.StartDate = item.Rule.StartDate.UTC().Format(response.DateFormat)
	}
	if item.Rule.EndDate != nil {
		end := item.Rule.EndDate.UTC().Format(response.DateFormat)
		rule.EndDate = &end
	}

	resp := itemResp{
		ID:             item.ID,
		OrganizationID: item.OrganizationID,
		PersonID:       item.PersonID,
		Name:           item.Name,
		Category:       item.Category,
		Status:         string(item.Status),
		Rule:           rule,
		ScheduleType:   string(item.ScheduleType),
		PurchaseCost:   item.PurchaseCost,
		OccurrenceCost: item.OccurrenceCost,
		BudgetCost:     item.BudgetCost,
		Budgets:        make([]budgetEntryResp, 0, len(item.Budgets)),
		CreatedAt:      response.DateTime(item.CreatedAt),
		UpdatedAt:      response.DateTime(item.UpdatedAt),
	}
	if item.TimeWindow != nil {
		resp.TimeWindow = &timeWindowResp{Start: item.TimeWindow.Start, End: item.TimeWindow.End}
	}
	for _, b := range item.Budgets {
		resp.Budgets = append(resp.Budgets, budgetEntryResp{Year: b.Year, Amount: b.Amount})
	}
	return resp
}

type listResp struct {
	Items  []itemResp `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func newListResp(output careneed.ListItemsOutput) listResp {
	resp := listResp{
		Items:  make([]itemResp, 0, len(output.Items)),
		Total:  output.Total,
		Limit:  output.Limit,
		Offset: output.Offset,
	}
	for _, item := range output.Items {
		resp.Items = append(resp.Items, newItemResp(item))
	}
	return resp
}
