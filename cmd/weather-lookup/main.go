package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/i474232898/weather-lookup/internal/api/http"
	"github.com/i474232898/weather-lookup/internal/config"
	"github.com/i474232898/weather-lookup/internal/scheduler"
	"github.com/i474232898/weather-lookup/internal/suggest"
	"github.com/i474232898/weather-lookup/internal/view"
	"github.com/i474232898/weather-lookup/internal/weather"
	"github.com/i474232898/weather-lookup/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// In-memory presentation state read back by clients.
	state := view.NewState()

	// Open-Meteo geocoding and forecast, Google reverse geocoding when keyed.
	provs := providers.FromConfig(cfg)

	// Core service owning the unit preference and the displayed snapshot.
	service := weather.NewService(provs.Resolver, provs.Fetcher, state, provs.Locator, cfg.DefaultUnit)

	// Debounced autocomplete feeding the same presentation state.
	engine := suggest.New(
		func(ctx context.Context, query string) ([]weather.Place, error) {
			return service.Suggest(ctx, query, cfg.SuggestLimit)
		},
		state,
		suggest.WithDebounce(cfg.SuggestDebounce),
		suggest.WithTimeout(cfg.HTTPTimeout),
	)
	defer engine.Close()

	// Scheduler that periodically refreshes the displayed place.
	sched := scheduler.New(cfg.RefreshInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Show the default position's weather on startup when one is configured.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := service.Locate(ctx); err != nil && !errors.Is(err, weather.ErrLocationUnavailable) {
			log.Printf("initial lookup failed: %v", err)
		}
	}()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-lookup",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-lookup",
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API routes.
	httpapi.RegisterRoutes(app, service, engine, state)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
