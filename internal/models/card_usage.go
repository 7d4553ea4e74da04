package models

import "github.com/shopspring/decimal"

// CardUsage is the derived utilization of one credit card.
// UsagePercent is intentionally unclamped so callers can detect over-limit
// (> 100) and upstream data errors (< 0); display clamping is a separate
// concern.
type CardUsage struct {
	CardID       string          `json:"card_id"`
	Used         decimal.Decimal `json:"used"`
	UsagePercent float64         `json:"usage_percent"`
}

// InvoiceSummary is the derived invoice roll-up for one month:
// Open = Total - Paid.
type InvoiceSummary struct {
	Total decimal.Decimal `json:"total"`
	Paid  decimal.Decimal `json:"paid"`
	Open  decimal.Decimal `json:"open"`
}
