package http

import (
	"github.com/gin-gonic/gin"

	"care-coordination/internal/schedule"
	"care-coordination/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
	Extend(c *gin.Context)
	EnsureHorizon(c *gin.Context)
	SweepOverdue(c *gin.Context)
	Complete(c *gin.Context)
	ListTasks(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates an HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
