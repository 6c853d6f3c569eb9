package http

import (
	"github.com/gin-gonic/gin"

	"care-coordination/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("", mw.Auth(), mw.RateLimit(), h.Create)
	rg.GET("", mw.Auth(), h.List)
	rg.GET("/:id", mw.Auth(), h.Detail)
	rg.PUT("/:id", mw.Auth(), mw.RateLimit(), h.Update)
}
