package http

import (
	"io"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	ctx := c.Request.Context()

	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		h.l.Errorf(ctx, "schedule.http.processGenerateReq.ShouldBindJSON: %v", err)
		return generateReq{}, errWrongBody
	}
	req.id = c.Param("id")
	return req, nil
}

func (h *handler) processExtendReq(c *gin.Context) (extendReq, error) {
	ctx := c.Request.Context()

	var req extendReq
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		h.l.Errorf(ctx, "schedule.http.processExtendReq.ShouldBindJSON: %v", err)
		return extendReq{}, errWrongBody
	}
	req.id = c.Param("id")
	return req, nil
}

func (h *handler) processEnsureHorizonReq(c *gin.Context) (ensureHorizonReq, error) {
	ctx := c.Request.Context()

	var req ensureHorizonReq
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		h.l.Errorf(ctx, "schedule.http.processEnsureHorizonReq.ShouldBindJSON: %v", err)
		return ensureHorizonReq{}, errWrongBody
	}
	return req, nil
}

func (h *handler) processCompleteReq(c *gin.Context) (completeReq, error) {
	ctx := c.Request.Context()

	var req completeReq
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		h.l.Errorf(ctx, "schedule.http.processCompleteReq.ShouldBindJSON: %v", err)
		return completeReq{}, errWrongBody
	}
	req.id = c.Param("id")
	return req, nil
}

func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, error) {
	ctx := c.Request.Context()

	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "schedule.http.processListTasksReq.ShouldBindQuery: %v", err)
		return listTasksReq{}, errWrongQuery
	}
	return req, nil
}
