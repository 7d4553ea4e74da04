package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fintrack/internal/services"
)

// DashboardHandler serves the derived monthly dashboard.
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns the monthly financial headline
//
// Method: GET /api/v1/dashboard
// Authentication: Required (bearer, forwarded to the finance backend)
//
// Query parameters:
//   - month: 1-12 (optional, defaults to current month)
//   - year: four-digit year (optional, defaults to current year)
//
// Success Response: 200 OK
//   - month: "YYYY-MM" reference month
//   - profile: greeting fields when the profile fetch succeeded
//   - summary: balance (all-time), income and expense (month-scoped)
//   - cards: per-card derived utilization
//   - degraded: resources replaced by empty collections, when any
//
// Error Responses:
//   - 400: Invalid month or year
//   - 401: Missing bearer or rejected by the backend
//   - 503: Backend unreachable or circuit open
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	ref, err := bindMonthRef(c)
	if err != nil {
		return sendMonthRefError(c, err)
	}

	view, err := h.dashboardService.GetDashboard(c.Request().Context(), ref)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: view,
		Meta: degradedMeta(view.Degraded),
	})
}

// degradedMeta exposes partial-data information in the response meta block
// so clients can render a non-fatal notice.
func degradedMeta(degraded []string) interface{} {
	if len(degraded) == 0 {
		return nil
	}
	return map[string]interface{}{"degraded": degraded}
}
