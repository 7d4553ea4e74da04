package models

import "github.com/shopspring/decimal"

// MonthlySummary is the derived dashboard headline for one reference month.
//
// Balance accumulates over the entire transaction history regardless of the
// selected month, while Income and Expense are scoped to the reference
// month. The two scopes are distinct on purpose and must never be mixed.
// Ephemeral: recomputed from every fresh snapshot, never persisted.
type MonthlySummary struct {
	Balance decimal.Decimal `json:"balance"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}
