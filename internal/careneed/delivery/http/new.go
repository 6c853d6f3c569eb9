package http

import (
	"github.com/gin-gonic/gin"

	"care-coordination/internal/careneed"
	"care-coordination/pkg/log"
)

// Handler is the public interface for the care-need HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc careneed.UseCase
}

// New creates an HTTP handler for the care-need domain.
func New(l log.Logger, uc careneed.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
