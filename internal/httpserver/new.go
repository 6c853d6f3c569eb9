package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	budgetHTTP "care-coordination/internal/budget/delivery/http"
	careneedHTTP "care-coordination/internal/careneed/delivery/http"
	"care-coordination/internal/middleware"
	scheduleHTTP "care-coordination/internal/schedule/delivery/http"
	"care-coordination/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	careNeedHandler careneedHTTP.Handler
	scheduleHandler scheduleHTTP.Handler
	budgetHandler   budgetHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	CareNeedHandler careneedHTTP.Handler
	ScheduleHandler scheduleHTTP.Handler
	BudgetHandler   budgetHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		careNeedHandler: cfg.CareNeedHandler,
		scheduleHandler: cfg.ScheduleHandler,
		budgetHandler:   cfg.BudgetHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.careNeedHandler == nil || srv.scheduleHandler == nil || srv.budgetHandler == nil {
		return errors.New("all domain handlers are required")
	}
	return nil
}
