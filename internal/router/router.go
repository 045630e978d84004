package router

import (
	"github.com/cyclesight/cyclesight/internal/cache"
	"github.com/cyclesight/cyclesight/internal/config"
	"github.com/cyclesight/cyclesight/internal/handlers"
	"github.com/cyclesight/cyclesight/internal/logging"
	"github.com/cyclesight/cyclesight/internal/middleware"
	"github.com/cyclesight/cyclesight/internal/providers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Setup configures all routes and middlewares
func Setup(app *fiber.App, logger *logging.Logger, provider providers.PriceProvider,
	seriesCache cache.SeriesCache, cfg config.Config,
) *handlers.Handler {
	h := handlers.New(logger, provider, seriesCache, cfg.Analysis)

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-API-Key,X-Request-ID",
	}))
	app.Use(logging.FiberMiddleware(logger))

	// Health check (no auth required)
	app.Get("/health", h.Health)

	// API key authentication middleware
	authMiddleware := middleware.APIKeyAuth(logger, cfg.Auth.APIKeys, cfg.Auth.Enabled)

	// API v1 routes (protected by API key)
	v1 := app.Group("/v1", authMiddleware)

	v1.Get("/ranges", h.Ranges)
	v1.Get("/symbols/:symbol/cycles", h.Cycles)

	// 404 handler
	app.Use(h.NotFound)

	return h
}

// New creates a new Fiber app with configuration
func New(logger *logging.Logger, provider providers.PriceProvider,
	seriesCache cache.SeriesCache, cfg config.Config,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "CycleSight API",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	Setup(app, logger, provider, seriesCache, cfg)

	return app
}
