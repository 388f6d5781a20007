package main

import (
	"context"
	"database/sql"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"placefinder/docs"
	"placefinder/internal/config"
	"placefinder/internal/database"
	"placefinder/internal/database/migration"
	"placefinder/internal/googlemaps"
	handlers "placefinder/internal/http/handler"
	"placefinder/internal/http/middleware"
	"placefinder/internal/otel"
	"placefinder/internal/repository"
	"placefinder/internal/repository/postgres"
	"placefinder/internal/service"
)

// @title Place Finder API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Printf("tracing disabled: %v", err)
	} else {
		defer shutdownTracing(ctx)
	}

	// A missing API key is surfaced to the user on every page, not a crash.
	if cfg.GoogleAPIKey == "" {
		log.Println("GOOGLE_API_KEY is not set; searches are disabled until it is configured")
	}

	// The search history store is optional: no DB_HOST, no database.
	var db *sql.DB
	var history repository.SearchHistoryRepository
	if cfg.HistoryEnabled() {
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		history = postgres.NewSearchHistoryPostgres(db)
	}

	maps := googlemaps.New(cfg.GoogleAPIKey, time.Duration(cfg.HTTPTimeoutSec)*time.Second)
	searchSvc := service.NewSearchService(maps, history, cfg.Search)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register prometheus metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, db, searchSvc, cfg)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
