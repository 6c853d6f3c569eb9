package http

import (
	"github.com/gin-gonic/gin"

	"care-coordination/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// schedule domain spans three path families, so it receives the
// versioned root group rather than a single subgroup.
func RegisterRoutes(v1 *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	careNeeds := v1.Group("/care-needs")
	careNeeds.POST("/:id/generate-tasks", mw.Auth(), mw.RateLimit(), h.Generate)
	careNeeds.POST("/:id/extend", mw.Auth(), mw.RateLimit(), h.Extend)

	sched := v1.Group("/schedule")
	sched.POST("/ensure-horizon", mw.Auth(), mw.RateLimit(), h.EnsureHorizon)
	sched.POST("/sweep-overdue", mw.Auth(), mw.RateLimit(), h.SweepOverdue)

	tasks := v1.Group("/tasks")
	tasks.GET("", mw.Auth(), h.ListTasks)
	tasks.PATCH("/:id/complete", mw.Auth(), mw.RateLimit(), h.Complete)
}
