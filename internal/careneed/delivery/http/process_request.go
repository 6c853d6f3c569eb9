package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "careneed.http.processCreateReq.ShouldBindJSON: %v", err)
		return createReq{}, errWrongBody
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "careneed.http.processListReq.ShouldBindQuery: %v", err)
		return listReq{}, errWrongQuery
	}
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "careneed.http.processUpdateReq.ShouldBindJSON: %v", err)
		return updateReq{}, errWrongBody
	}
	req.id = c.Param("id")
	return req, nil
}
