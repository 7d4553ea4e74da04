package handlers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/url"

	"github.com/labstack/echo/v4"

	"fintrack/internal/backend"
	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// bindMonthRef binds and validates the month/year query parameters,
// defaulting to the current month.
func bindMonthRef(c echo.Context) (models.MonthRef, error) {
	var query dto.MonthQuery
	if err := c.Bind(&query); err != nil {
		return models.MonthRef{}, err
	}
	if err := c.Validate(&query); err != nil {
		return models.MonthRef{}, err
	}
	return query.Resolve()
}

// sendMonthRefError maps MonthRef construction failures onto validation
// error codes.
func sendMonthRefError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, models.ErrInvalidMonth):
		return SendError(c, apierrors.ValidationInvalidMonth)
	case stderrors.Is(err, models.ErrInvalidYear):
		return SendError(c, apierrors.ValidationInvalidYear)
	default:
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
}

// handleServiceError maps service-layer failures onto error codes. Degraded
// snapshots never reach here: only credential problems and total upstream
// failures abort a view.
func handleServiceError(c echo.Context, err error) error {
	traceID := getTraceID(c)

	var apiErr *backend.APIError
	var urlErr *url.Error
	switch {
	case stderrors.Is(err, backend.ErrNoToken):
		return SendError(c, apierrors.AuthMissingToken)
	case stderrors.As(err, &apiErr) && apiErr.IsAuthError():
		return SendError(c, apierrors.AuthUpstreamRejected)
	case stderrors.As(err, &apiErr):
		slog.Warn("backend returned error status",
			"trace_id", traceID,
			"status", apiErr.StatusCode,
			"path", c.Request().URL.Path)
		return SendError(c, apierrors.BackendBadStatus)
	case stderrors.Is(err, backend.ErrCircuitOpen):
		return SendError(c, apierrors.BackendCircuitOpen)
	case stderrors.Is(err, services.ErrDuplicateForecast):
		return SendError(c, apierrors.AggregationDuplicateForecast, apierrors.WithDetails(err.Error()))
	case stderrors.As(err, &urlErr),
		stderrors.Is(err, context.Canceled),
		stderrors.Is(err, context.DeadlineExceeded):
		slog.Warn("backend unreachable",
			"trace_id", traceID,
			"path", c.Request().URL.Path,
			"error", err)
		return SendError(c, apierrors.BackendUnreachable)
	default:
		slog.Error("service call failed",
			"trace_id", traceID,
			"path", c.Request().URL.Path,
			"error", err)
		return SendSystemError(c, err)
	}
}
