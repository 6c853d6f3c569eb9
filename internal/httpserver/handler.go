package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	budgetHTTP "care-coordination/internal/budget/delivery/http"
	careneedHTTP "care-coordination/internal/careneed/delivery/http"
	scheduleHTTP "care-coordination/internal/schedule/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	v1 := srv.gin.Group("/api/v1")

	careneedHTTP.RegisterRoutes(v1.Group("/care-needs"), srv.careNeedHandler, srv.mw)
	scheduleHTTP.RegisterRoutes(v1, srv.scheduleHandler, srv.mw)
	budgetHTTP.RegisterRoutes(v1.Group("/budget-reports"), srv.budgetHandler, srv.mw)

	srv.l.Infof(ctx, "care-need, schedule and budget domains registered under /api/v1")
}
