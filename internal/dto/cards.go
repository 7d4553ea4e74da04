package dto

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// CardUsageItem is one credit card with its derived utilization.
// UsagePercent is the raw unclamped value so clients can detect over-limit;
// DisplayPercent is clamped to [0, 100] for progress bars.
type CardUsageItem struct {
	CardID         string          `json:"card_id"`
	Name           string          `json:"name"`
	BankName       string          `json:"bank_name,omitempty"`
	Type           string          `json:"type"`
	LastFourDigits string          `json:"last_four_digits"`
	ClosingDay     int             `json:"closing_day"`
	DueDay         int             `json:"due_day"`
	Color          string          `json:"color,omitempty"`
	Limit          decimal.Decimal `json:"limit"`
	AvailableLimit decimal.Decimal `json:"available_limit"`
	Used           decimal.Decimal `json:"used"`
	UsagePercent   float64         `json:"usage_percent"`
	DisplayPercent float64         `json:"display_percent"`
	Warning        bool            `json:"warning"`
	OverLimit      bool            `json:"over_limit"`
}

// CardsUsageResponse lists all cards with derived utilization.
type CardsUsageResponse struct {
	Cards []CardUsageItem `json:"cards"`
}

// InvoiceSummaryResponse is the invoice view for one month.
type InvoiceSummaryResponse struct {
	Month    string                `json:"month"`
	Summary  models.InvoiceSummary `json:"summary"`
	Invoices []models.Invoice      `json:"invoices"`
}
