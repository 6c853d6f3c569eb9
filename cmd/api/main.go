package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"care-coordination/config"
	_ "care-coordination/docs" // Swagger docs
	budgetHTTP "care-coordination/internal/budget/delivery/http"
	budgetSqlite "care-coordination/internal/budget/repository/sqlite"
	budgetUC "care-coordination/internal/budget/usecase"
	careneedHTTP "care-coordination/internal/careneed/delivery/http"
	careneedSqlite "care-coordination/internal/careneed/repository/sqlite"
	careneedUC "care-coordination/internal/careneed/usecase"
	"care-coordination/internal/httpserver"
	"care-coordination/internal/middleware"
	"care-coordination/internal/schedule"
	"care-coordination/internal/schedule/calendar"
	scheduleHTTP "care-coordination/internal/schedule/delivery/http"
	scheduleSqlite "care-coordination/internal/schedule/repository/sqlite"
	scheduleUC "care-coordination/internal/schedule/usecase"
	"care-coordination/internal/store/sqlite"
	"care-coordination/pkg/gcalendar"
	"care-coordination/pkg/log"
)

// @title       Care Coordination API
// @description Recurring care-need scheduling, task materialization and annual budget reports.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Care Coordination API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "SQLite path: %s", cfg.SQLite.Path)

	// 3. Storage
	db, err := sqlite.Open(cfg.SQLite.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	// 4. Repositories
	itemRepo := careneedSqlite.New(db, logger)
	taskRepo := scheduleSqlite.New(db, logger)
	spendRepo := budgetSqlite.New(db, logger)

	// 5. Google Calendar export (optional)
	var exporter schedule.CalendarExporter
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			exporter = calendar.NewExporter(logger, calendarClient, cfg.GoogleCalendar.CalendarID)
			logger.Info(ctx, "Google Calendar export initialized")
		}
	}

	// 6. UseCases
	careNeedUseCase := careneedUC.New(logger, itemRepo, cfg.Schedule.HorizonDays, nil)
	scheduleUseCase := scheduleUC.New(logger, taskRepo, itemRepo, exporter, scheduleUC.Config{
		DefaultWindowYears:  cfg.Schedule.DefaultWindowYears,
		ExtendHorizonMonths: cfg.Schedule.ExtendHorizonMonths,
		HorizonDays:         cfg.Schedule.HorizonDays,
	}, nil)
	budgetUseCase := budgetUC.New(logger, spendRepo, itemRepo, cfg.Budget.ReportCacheTTL, nil)

	// 7. Delivery
	mw := middleware.New(logger, cfg)
	careNeedHandler := careneedHTTP.New(logger, careNeedUseCase)
	scheduleHandler := scheduleHTTP.New(logger, scheduleUseCase)
	budgetHandler := budgetHTTP.New(logger, budgetUseCase)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		CareNeedHandler: careNeedHandler,
		ScheduleHandler: scheduleHandler,
		BudgetHandler:   budgetHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
