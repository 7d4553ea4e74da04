package services

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// SummaryAnomalies counts records that could not fully participate in the
// monthly summary. They are reported for logging and metrics; a bad record
// never aborts the aggregation.
type SummaryAnomalies struct {
	// InvalidAmounts counts transactions whose amount could not be coerced
	// to a number. They contribute zero everywhere.
	InvalidAmounts int
	// InvalidDates counts transactions whose date could not be parsed. They
	// still count toward the all-time balance but are excluded from the
	// month-scoped totals.
	InvalidDates int
	// UnknownKinds counts transactions that are neither income nor expense.
	// They contribute nothing.
	UnknownKinds int
}

func (a SummaryAnomalies) Any() bool {
	return a.InvalidAmounts > 0 || a.InvalidDates > 0 || a.UnknownKinds > 0
}

// ComputeMonthlySummary derives the dashboard headline from a transaction
// snapshot in a single pass.
//
// Balance accumulates income minus expense over every transaction
// regardless of date. Income and Expense only accumulate transactions whose
// date falls in the reference month. The output is independent of input
// order: each transaction contributes exactly one commutative addition per
// scope.
func ComputeMonthlySummary(txs []models.Transaction, ref models.MonthRef) (models.MonthlySummary, SummaryAnomalies) {
	var summary models.MonthlySummary
	var anomalies SummaryAnomalies

	for i := range txs {
		tx := &txs[i]

		kind := tx.Kind()
		if kind == models.KindUnknown {
			anomalies.UnknownKinds++
			continue
		}

		amount := decimal.Zero
		if tx.Amount.Valid {
			amount = tx.Amount.Decimal
		} else {
			anomalies.InvalidAmounts++
		}

		// All-time scope: every parseable amount moves the balance.
		if kind == models.KindIncome {
			summary.Balance = summary.Balance.Add(amount)
		} else {
			summary.Balance = summary.Balance.Sub(amount)
		}

		// Month scope: only transactions dated inside the reference month.
		if !tx.Date.Valid {
			anomalies.InvalidDates++
			continue
		}
		if !ref.Contains(tx.Date) {
			continue
		}
		if kind == models.KindIncome {
			summary.Income = summary.Income.Add(amount)
		} else {
			summary.Expense = summary.Expense.Add(amount)
		}
	}

	return summary, anomalies
}
