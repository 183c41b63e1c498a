package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/bimbel-hq/rostering-api/api/swagger"
	"github.com/bimbel-hq/rostering-api/internal/handler"
	"github.com/bimbel-hq/rostering-api/internal/middleware"
	"github.com/bimbel-hq/rostering-api/internal/repository"
	"github.com/bimbel-hq/rostering-api/internal/service"
	"github.com/bimbel-hq/rostering-api/pkg/cache"
	"github.com/bimbel-hq/rostering-api/pkg/config"
	"github.com/bimbel-hq/rostering-api/pkg/database"
	"github.com/bimbel-hq/rostering-api/pkg/logger"
	corsmiddleware "github.com/bimbel-hq/rostering-api/pkg/middleware/cors"
	reqidmiddleware "github.com/bimbel-hq/rostering-api/pkg/middleware/requestid"
)

// @title Rostering API
// @version 0.1.0
// @description Weekly availability and bulk busy-schedule management
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// Snapshot caching is an optimisation; the engine works without it.
		logr.Sugar().Warnw("redis unavailable, snapshot caching disabled", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	validate := validator.New()

	rosterRepo := repository.NewRosterRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(redisClient, cfg.Snapshot.TTL)

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}
	snapshotSvc := service.NewSnapshotService(rosterRepo, snapshotRepo, metricsSvc, logr)
	availabilitySvc := service.NewAvailabilityService(rosterRepo, lessonRepo, logr)
	personSvc := service.NewPersonService(rosterRepo, logr)
	batchSvc := service.NewBatchService(rosterRepo, snapshotSvc, validate, metricsSvc, logr)
	importSvc := service.NewImportService(rosterRepo, snapshotSvc, validate, metricsSvc, cfg.Import.PreviewTTL, cfg.Import.MaxRows, logr)

	availabilityHandler := handler.NewAvailabilityHandler(availabilitySvc)
	personHandler := handler.NewPersonHandler(personSvc)
	batchHandler := handler.NewBatchHandler(batchSvc)
	importHandler := handler.NewImportHandler(importSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	if cfg.Metrics.Enabled {
		r.GET("/metrics", metricsHandler.Prometheus)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/availability/grid", availabilityHandler.Grid)
		api.GET("/availability/roster", availabilityHandler.Roster)
		api.GET("/persons", personHandler.List)
		api.POST("/imports/preview", importHandler.Preview)
		api.POST("/imports/:id/commit", importHandler.Commit)
		api.GET("/imports/:id/report", importHandler.Report)
		api.PUT("/busy/batch", batchHandler.Apply)
	}

	scheduler := cron.New()
	if redisClient != nil && cfg.Snapshot.RefreshSchedule != "" {
		_, err := scheduler.AddFunc(cfg.Snapshot.RefreshSchedule, func() {
			if err := snapshotSvc.RefreshAll(context.Background()); err != nil {
				logr.Sugar().Warnw("snapshot refresh run failed", "error", err)
			}
		})
		if err != nil {
			logr.Sugar().Fatalw("invalid snapshot refresh schedule", "schedule", cfg.Snapshot.RefreshSchedule, "error", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
