package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fintrack/internal/backend"
	"fintrack/internal/config"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
)

func main() {
	// .env is optional, real deployments configure through the environment
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	policy, err := services.ParseDuplicatePolicy(cfg.Planning.DuplicatePolicy)
	if err != nil {
		slog.Error("Invalid duplicate forecast policy", "policy", cfg.Planning.DuplicatePolicy, "error", err)
		os.Exit(1)
	}

	metrics := services.NewPrometheusMetrics()

	breaker := backend.NewCircuitBreaker(backend.CircuitBreakerConfig{
		MaxFailures:     cfg.Backend.MaxFailures,
		ResetTimeout:    cfg.Backend.BreakerReset,
		HalfOpenMaxSucc: cfg.Backend.BreakerHalfOpen,
	})

	api := backend.NewClient(
		cfg.Backend.BaseURL,
		backend.ContextTokenProvider{},
		backend.WithHTTPClient(&http.Client{Timeout: cfg.Backend.Timeout}),
		backend.WithCircuitBreaker(breaker),
		backend.WithObserver(metrics),
	)

	thresholds := services.BudgetThresholds{
		WarnRatio: cfg.Planning.WarnRatio,
		OverRatio: cfg.Planning.OverRatio,
	}

	dashboardService := services.NewDashboardService(api, metrics, cfg.Cards.WarnPercent)
	planningService := services.NewPlanningService(api, metrics, policy, thresholds)
	cardService := services.NewCardService(api, metrics, cfg.Cards.WarnPercent)

	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	planningHandler := handlers.NewPlanningHandler(planningService)
	cardHandler := handlers.NewCardHandler(cardService)
	healthHandler := handlers.NewHealthCheckHandler(api)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1", middleware.BearerPassthrough())
	v1.GET("/dashboard", dashboardHandler.GetDashboard)
	v1.GET("/planning", planningHandler.GetPlanning)
	v1.GET("/cards/usage", cardHandler.GetCardsUsage)
	v1.GET("/invoices/summary", cardHandler.GetInvoiceSummary)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("Starting fintrack server",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"backend_url", cfg.Backend.BaseURL)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped gracefully")
}
