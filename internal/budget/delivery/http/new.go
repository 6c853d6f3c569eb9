package http

import (
	"github.com/gin-gonic/gin"

	"care-coordination/internal/budget"
	"care-coordination/pkg/log"
)

// Handler is the public interface for the budget HTTP delivery layer.
type Handler interface {
	Report(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc budget.UseCase
}

// New creates an HTTP handler for the budget domain.
func New(l log.Logger, uc budget.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
