package http

import (
	"github.com/gin-gonic/gin"

	"care-coordination/internal/middleware"
	"care-coordination/pkg/response"
)

// Create godoc
// @Summary     Register a care need
// @Description Creates a care-need item with its recurrence rule and per-year budgets.
// @Tags        CareNeeds
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Care need"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Validation error"
// @Router      /api/v1/care-needs [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// List godoc
// @Summary     List care needs
// @Description Returns a paginated list of care-need items in the caller's scope.
// @Tags        CareNeeds
// @Produce     json
// @Param       person_id query string false "Filter by person"
// @Param       status    query string false "Filter by status (active/returned)"
// @Param       limit     query int    false "Page size (default 20)"
// @Param       offset    query int    false "Page offset"
// @Success     200 {object} listResp
// @Router      /api/v1/care-needs [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(output))
}

// Detail godoc
// @Summary     Get care need detail
// @Tags        CareNeeds
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/care-needs/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	output, err := h.uc.Detail(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Update godoc
// @Summary     Update a care need
// @Description Partial update. Editing the rule never deletes already-materialized tasks.
// @Tags        CareNeeds
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Item ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/care-needs/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newItemResp(output.Item))
}
