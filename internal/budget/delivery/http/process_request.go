package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processReportReq(c *gin.Context) (reportReq, error) {
	ctx := c.Request.Context()

	var req reportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "budget.http.processReportReq.ShouldBindQuery: %v", err)
		return reportReq{}, errWrongQuery
	}
	return req, nil
}
