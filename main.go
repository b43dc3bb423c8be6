// File: noxshift/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"noxshift/config"
	"noxshift/cron"
	"noxshift/database"
	employeeRepo "noxshift/database/repository/employee"
	ledgerRepo "noxshift/database/repository/ledger"
	shiftRepo "noxshift/database/repository/shift"
	"noxshift/handlers"
	"noxshift/middleware"
	"noxshift/routes"
	"noxshift/services/progression"
	"noxshift/services/scheduling"
	"noxshift/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	shifts := shiftRepo.NewMongoShiftRepo()
	employees := employeeRepo.NewMongoEmployeeRepo()
	ledger := ledgerRepo.NewMongoLedgerRepo()

	// services.
	scorer := scheduling.NewScorer(config.AppConfig.ScoreJitter)
	schedulingService := &scheduling.DefaultSchedulingService{
		ShiftRepo:    shifts,
		EmployeeRepo: employees,
		Recommender:  scheduling.NewRecommender(scorer, config.AppConfig.MaxCandidates),
	}
	progressionService := &progression.DefaultProgressionService{
		Repo:                ledger,
		EnforceAvailability: config.AppConfig.EnforceRewardAvailability,
	}

	// Background reward worker for completed shifts.
	cron.InitRewardWorker(progressionService)
	enqueuer := cron.NewEnqueuer()

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Shifts:      handlers.NewShiftHandler(shifts, schedulingService, enqueuer, logger),
		Schedule:    handlers.NewScheduleHandler(schedulingService, utils.GetCacheClient(), logger),
		Progression: handlers.NewProgressionHandler(progressionService, logger),
		Employees:   handlers.NewEmployeeHandler(employees),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
