package http

import (
	"github.com/gin-gonic/gin"

	"care-coordination/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("", mw.Auth(), h.Report)
}
