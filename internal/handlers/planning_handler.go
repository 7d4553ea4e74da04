package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fintrack/internal/services"
)

// PlanningHandler serves the reconciled budget view.
type PlanningHandler struct {
	planningService services.PlanningServiceInterface
}

func NewPlanningHandler(planningService services.PlanningServiceInterface) *PlanningHandler {
	return &PlanningHandler{planningService: planningService}
}

// GetPlanning returns planned-vs-actual budget groups for one month
//
// Method: GET /api/v1/planning
// Authentication: Required (bearer, forwarded to the finance backend)
//
// Query parameters:
//   - month: 1-12 (optional, defaults to current month)
//   - year: four-digit year (optional, defaults to current year)
//
// Success Response: 200 OK
//   - month: "YYYY-MM" reference month
//   - groups: one entry per budgeted category with planned, actual,
//     progress percent and over/close/normal status
//   - totals: planned and actual sums split by income/expense
//   - degraded: resources replaced by empty collections, when any
//
// Error Responses:
//   - 400: Invalid month or year
//   - 401: Missing bearer or rejected by the backend
//   - 409: Duplicate budget targets under the reject policy
//   - 503: Backend unreachable or circuit open
func (h *PlanningHandler) GetPlanning(c echo.Context) error {
	ref, err := bindMonthRef(c)
	if err != nil {
		return sendMonthRefError(c, err)
	}

	view, err := h.planningService.GetPlanning(c.Request().Context(), ref)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: view,
		Meta: degradedMeta(view.Degraded),
	})
}
