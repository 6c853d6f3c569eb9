package http

import (
	"github.com/gin-gonic/gin"

	"care-coordination/internal/middleware"
	"care-coordination/pkg/response"
)

// Report godoc
// @Summary     Annual budget report
// @Description Rolls completed spend, purchases and projections up from items through categories for one person and year.
// @Tags        Budget
// @Produce     json
// @Param       person_id query string true "Person ID"
// @Param       year      query int    true "Calendar year"
// @Success     200 {object} reportResp
// @Failure     400 {object} response.Resp "Validation error"
// @Router      /api/v1/budget-reports [GET]
func (h *handler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Report(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Report: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newReportResp(output))
}
