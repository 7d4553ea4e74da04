package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fintrack/internal/errors"
)

// Pinger probes upstream reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	backend Pinger
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(backend Pinger) *HealthCheckHandler {
	return &HealthCheckHandler{backend: backend}
}

// HealthCheck reports service liveness and finance backend reachability.
// An unreachable backend yields 503: this service is a pure derivation
// layer and has nothing to serve without its upstream.
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.backend.Ping(ctx); err != nil {
		traceID := getTraceID(c)
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			traceID,
			errors.WithDetails("Finance backend unreachable"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
