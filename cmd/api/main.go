package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/wealthpath/serialdate/docs"
	"github.com/wealthpath/serialdate/internal/config"
	"github.com/wealthpath/serialdate/internal/handler"
	applog "github.com/wealthpath/serialdate/internal/logger"
	"github.com/wealthpath/serialdate/internal/metrics"
	"github.com/wealthpath/serialdate/internal/repository"
	"github.com/wealthpath/serialdate/internal/scheduler"
	"github.com/wealthpath/serialdate/internal/service"
	"github.com/wealthpath/serialdate/pkg/datetime"
)

// @title Serial Date API
// @version 1.0
// @description Converts calendar dates to spreadsheet serial numbers and back, with weekday and date arithmetic.

// @contact.name API Support
// @contact.email support@wealthpath.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg := config.Load()

	logger := applog.Init(cfg.Env)

	// Build the registry before serving so the first request does not pay for it
	registry := datetime.Default()
	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	// Initialize services
	dateService := service.NewDateService(registry, appMetrics, cfg.MaxRangeDays)
	exportService := service.NewExportService(dateService)

	routes := handler.Routes{
		Dates:     handler.NewDateHandler(dateService, exportService),
		Calendar:  handler.NewCalendarHandler(dateService, exportService),
		JWTSecret: cfg.JWTSecret,
	}

	// The serial_dates dimension table is optional
	var syncScheduler *scheduler.Scheduler
	if cfg.HasDatabase() {
		db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer func() { _ = db.Close() }()

		serialDateRepo := repository.NewSerialDateRepository(db)
		syncRunRepo := repository.NewSyncRunRepository(db)
		if err := serialDateRepo.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("Failed to create schema: %v", err)
		}

		retry := service.DefaultRetryConfig()
		retry.MaxAttempts = cfg.SyncAttempts
		syncService := service.NewSyncService(serialDateRepo, syncRunRepo, registry, appMetrics, cfg.SyncBatchSize).
			WithRetry(retry)
		routes.Sync = handler.NewSyncHandler(syncService)

		if cfg.SyncEnabled {
			syncScheduler = scheduler.New(scheduler.Config{
				Schedule: cfg.SyncSchedule,
				Timeout:  cfg.SyncTimeout,
				Enabled:  cfg.SyncEnabled,
			}, syncService, logger)
			if err := syncScheduler.Start(); err != nil {
				logger.Error("Failed to start sync scheduler", slog.String("error", err.Error()))
				syncScheduler = nil
			}
		}
	} else {
		logger.Warn("DATABASE_URL not set, dimension sync disabled")
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(applog.Middleware)
	r.Use(middleware.Recoverer)
	// CORS - allow frontend origin from env or default
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Handle("/metrics", promhttp.Handler())

	routes.Mount(r)

	// Create server
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		// Stop scheduler first
		if syncScheduler != nil {
			ctx := syncScheduler.Stop()
			<-ctx.Done()
			logger.Info("Scheduler stopped")
		}

		// Shutdown HTTP server
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("Server shutdown error", slog.String("error", err.Error()))
		}
	}()

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.Int("max_serial", registry.MaxSerial()),
		slog.Bool("sync", routes.Sync != nil),
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("Server failed: %v", err)
	}
}
