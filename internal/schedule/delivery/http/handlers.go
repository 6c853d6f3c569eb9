package http

import (
	"github.com/gin-gonic/gin"

	"care-coordination/internal/middleware"
	"care-coordination/pkg/response"
)

// Generate godoc
// @Summary     Materialize tasks for a care need
// @Description Expands the item's recurrence rule inside a window and upserts one task per occurrence. Idempotent.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       id   path string      true  "Item ID"
// @Param       body body generateReq false "Window override"
// @Success     200 {object} generateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/care-needs/{id}/generate-tasks [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Generate(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newGenerateResp(output))
}

// Extend godoc
// @Summary     Extend a care need's task horizon
// @Description Materializes tasks past the latest existing one, up to a new end date or a horizon in months.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       id   path string    true  "Item ID"
// @Param       body body extendReq false "Horizon override"
// @Success     200 {object} extendResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/care-needs/{id}/extend [POST]
func (h *handler) Extend(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Extend(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Extend: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newExtendResp(output))
}

// EnsureHorizon godoc
// @Summary     Top up open-ended items
// @Description Extends every open-ended active item in the organization to the rolling horizon. Intended for periodic invocation.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body ensureHorizonReq false "Horizon override"
// @Success     200 {object} ensureHorizonResp
// @Router      /api/v1/schedule/ensure-horizon [POST]
func (h *handler) EnsureHorizon(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEnsureHorizonReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.EnsureHorizon(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.EnsureHorizon: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, ensureHorizonResp{
		Checked:  output.Checked,
		Extended: output.Extended,
		Upserts:  output.Upserts,
	})
}

// SweepOverdue godoc
// @Summary     Mark overdue tasks as missed
// @Description Flips scheduled tasks due before today to missed.
// @Tags        Schedule
// @Produce     json
// @Success     200 {object} sweepResp
// @Router      /api/v1/schedule/sweep-overdue [POST]
func (h *handler) SweepOverdue(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.SweepOverdue(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.SweepOverdue: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, sweepResp{Updated: output.Updated})
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks a scheduled or missed task as completed, optionally recording the actual cost.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       id   path string      true  "Task ID"
// @Param       body body completeReq false "Completion details"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/complete [PATCH]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCompleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Complete(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// ListTasks godoc
// @Summary     List tasks
// @Description Returns a paginated task list filtered by item, person, status and due-date range.
// @Tags        Schedule
// @Produce     json
// @Param       item_id   query string false "Filter by care-need item"
// @Param       person_id query string false "Filter by person"
// @Param       status    query string false "Filter by status"
// @Param       from      query string false "Due date lower bound (YYYY-MM-DD)"
// @Param       to        query string false "Due date upper bound (YYYY-MM-DD)"
// @Param       limit     query int    false "Page size (default 20)"
// @Param       offset    query int    false "Page offset"
// @Success     200 {object} taskListResp
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListTasks(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskListResp(output))
}
