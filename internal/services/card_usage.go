package services

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// ComputeCardUsage derives utilization for one credit card.
//
// Used is limit minus available limit; the percentage is used over limit
// when the limit is positive and zero otherwise, so a zero-limit card never
// produces NaN or infinity. The percentage is returned raw: a backend that
// ships available_limit > limit or a negative available limit yields a
// negative or over-100 value the caller can detect. Clamping is display
// policy, see ClampPercent.
func ComputeCardUsage(card models.CreditCard) models.CardUsage {
	limit := decimal.Zero
	if card.Limit.Valid {
		limit = card.Limit.Decimal
	}
	available := decimal.Zero
	if card.AvailableLimit.Valid {
		available = card.AvailableLimit.Decimal
	}

	used := limit.Sub(available)

	var percent float64
	if limit.IsPositive() {
		percent, _ = used.Div(limit).Mul(oneHundred).Float64()
	}

	return models.CardUsage{
		CardID:       card.ID,
		Used:         used,
		UsagePercent: percent,
	}
}

// ClampPercent bounds a percentage to [0, 100] for progress display.
func ClampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ComputeInvoiceSummary rolls up one month of invoices: total across all
// statuses, paid across PAID only, open as the difference.
func ComputeInvoiceSummary(invoices []models.Invoice) models.InvoiceSummary {
	var summary models.InvoiceSummary
	for i := range invoices {
		inv := &invoices[i]

		amount := decimal.Zero
		if inv.Amount.Valid {
			amount = inv.Amount.Decimal
		}

		summary.Total = summary.Total.Add(amount)
		if inv.IsPaid() {
			summary.Paid = summary.Paid.Add(amount)
		}
	}
	summary.Open = summary.Total.Sub(summary.Paid)
	return summary
}
