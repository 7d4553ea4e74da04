package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fintrack/internal/services"
)

// CardHandler serves derived credit card utilization and invoice roll-ups.
type CardHandler struct {
	cardService services.CardServiceInterface
}

func NewCardHandler(cardService services.CardServiceInterface) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// GetCardsUsage returns utilization for every credit card
//
// Method: GET /api/v1/cards/usage
// Authentication: Required (bearer, forwarded to the finance backend)
//
// Success Response: 200 OK
//   - cards: card fields plus used amount, raw usage_percent, clamped
//     display_percent, warning and over_limit flags
//
// Error Responses:
//   - 401: Missing bearer or rejected by the backend
//   - 503: Backend unreachable or circuit open
func (h *CardHandler) GetCardsUsage(c echo.Context) error {
	view, err := h.cardService.GetCardsUsage(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: view})
}

// GetInvoiceSummary returns the invoice roll-up for one month
//
// Method: GET /api/v1/invoices/summary
// Authentication: Required (bearer, forwarded to the finance backend)
//
// Query parameters:
//   - month: 1-12 (optional, defaults to current month)
//   - year: four-digit year (optional, defaults to current year)
//
// Success Response: 200 OK
//   - month: "YYYY-MM" reference month
//   - summary: total, paid and open amounts
//   - invoices: the invoices the summary was derived from
//
// Error Responses:
//   - 400: Invalid month or year
//   - 401: Missing bearer or rejected by the backend
//   - 503: Backend unreachable or circuit open
func (h *CardHandler) GetInvoiceSummary(c echo.Context) error {
	ref, err := bindMonthRef(c)
	if err != nil {
		return sendMonthRefError(c, err)
	}

	view, err := h.cardService.GetInvoiceSummary(c.Request().Context(), ref)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: view})
}
