package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cmsapi/internal/auth"
	"cmsapi/internal/config"
	"cmsapi/internal/database"
	"cmsapi/internal/database/migration"
	"cmsapi/internal/database/seed"
	handlers "cmsapi/internal/http/handler"
	"cmsapi/internal/http/middleware"
	"cmsapi/internal/otel"
	"cmsapi/internal/repository/postgres"
	"cmsapi/internal/service"
	"cmsapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET_KEY must be set")
	}

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Repositories and services
	contentRepo := postgres.NewContentPostgres(db)
	adminRepo := postgres.NewAdminPostgres(db)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireMinutes)*time.Minute)
	sessions := auth.NewSessionSet()

	contentSvc := service.NewContentService(contentRepo)
	searchSvc := service.NewSearchService(contentRepo)
	statsSvc := service.NewStatsService(contentRepo)
	mediaSvc := service.NewMediaService(objStore)
	authSvc := service.NewAuthService(adminRepo, tokens, sessions)

	if err := seed.EnsureSeeded(ctx, contentRepo, contentSvc, cfg.Admin); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    20 * 1024 * 1024,
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	promMw, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to set up metrics: %v", err)
	}
	app.Use(promMw.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, &handlers.Handlers{
		Content: handlers.NewContentHandler(contentSvc),
		Media:   handlers.NewMediaHandler(contentSvc, mediaSvc),
		Search:  handlers.NewSearchHandler(searchSvc),
		Auth:    handlers.NewAuthHandler(authSvc),
		Stats:   handlers.NewStatsHandler(statsSvc),
		Forms:   handlers.NewFormsHandler(contentSvc),
	}, tokens)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
