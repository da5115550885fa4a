package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/analytics/customer"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/analytics/inventory"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/api"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/cache"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/config"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/insights"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/repository/postgres"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/service"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/storage"
	"github.com/bagoessprasetyo/pos-ai-sub001/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	reportCache, err := cache.NewReportCache(cfg.Cache)
	if err != nil {
		log.Warn().Err(err).Msg("Cache unavailable, continuing without it")
		reportCache = cache.NewNoopReportCache()
	}

	var generator insights.Generator = insights.Disabled{}
	if cfg.Insights.Enabled {
		generator = insights.NewHTTPGenerator(insights.Config{
			BaseURL: cfg.Insights.BaseURL,
			APIKey:  cfg.Insights.APIKey,
			Model:   cfg.Insights.Model,
			Timeout: cfg.Insights.Timeout,
		})
	}

	opts := []service.AnalyticsServiceOption{
		service.WithCustomerWindowMonths(cfg.Analytics.CustomerWindowMonths),
		service.WithInventoryWindowDays(cfg.Analytics.InventoryWindowDays),
	}
	if cfg.Archive.Enabled {
		archiver, err := storage.NewMinioArchiver(cfg.Archive)
		if err != nil {
			log.Warn().Err(err).Msg("Archive unavailable, continuing without it")
		} else {
			opts = append(opts, service.WithArchiver(archiver))
		}
	}

	analyticsService := service.NewAnalyticsService(
		postgres.NewAnalyticsRepository(db),
		reportCache,
		generator,
		newAnalyzer(cfg.Analytics),
		newEngine(cfg.Analytics),
		opts...,
	)

	router := api.NewRouter(&api.Services{AnalyticsService: analyticsService}, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}

func newAnalyzer(cfg config.AnalyticsConfig) *customer.Analyzer {
	analyzer := customer.NewAnalyzer()
	if cfg.ChurnThresholdDays > 0 {
		analyzer.ChurnThresholdDays = cfg.ChurnThresholdDays
	}
	if cfg.CustomerWindowMonths > 0 {
		analyzer.WindowMonths = cfg.CustomerWindowMonths
	}
	return analyzer
}

func newEngine(cfg config.AnalyticsConfig) *inventory.Engine {
	engine := inventory.NewEngine()
	if cfg.InventoryWindowDays > 0 {
		engine.WindowDays = cfg.InventoryWindowDays
	}
	if cfg.LeadTimeDays > 0 {
		engine.Policy.LeadTimeDays = float64(cfg.LeadTimeDays)
	}
	if cfg.ServiceZScore > 0 {
		engine.Policy.ServiceZScore = cfg.ServiceZScore
	}
	if cfg.Workers > 0 {
		engine.Workers = cfg.Workers
	}
	return engine
}
