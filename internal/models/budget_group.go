package models

import "github.com/shopspring/decimal"

// BudgetStatus classifies how a budget group tracks against its target.
type BudgetStatus string

const (
	BudgetStatusNormal BudgetStatus = "normal"
	BudgetStatusClose  BudgetStatus = "close"
	BudgetStatusOver   BudgetStatus = "over"
)

// BudgetGroup is the derived planned-vs-actual record for one category in
// one month. Ephemeral: rebuilt per month view from the latest snapshot.
type BudgetGroup struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Planned      decimal.Decimal `json:"planned"`
	Actual       decimal.Decimal `json:"actual"`
	Kind         Kind            `json:"kind"`
	ForecastID   string          `json:"forecast_id,omitempty"`
}

// BudgetTotals sums planned and actual across groups, split by kind.
// Mirrors the header cards of the planning view.
type BudgetTotals struct {
	PlannedExpense decimal.Decimal `json:"planned_expense"`
	ActualExpense  decimal.Decimal `json:"actual_expense"`
	PlannedIncome  decimal.Decimal `json:"planned_income"`
	ActualIncome   decimal.Decimal `json:"actual_income"`
}
