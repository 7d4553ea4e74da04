package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// UnknownCategoryName labels groups whose forecast references a category
// the categories endpoint does not know about.
const UnknownCategoryName = "Unknown category"

// ErrDuplicateForecast is returned under DuplicateReject when two budget
// targets claim the same category.
var ErrDuplicateForecast = errors.New("duplicate budget target for category")

// DuplicatePolicy decides what happens when two forecasts reference the
// same category for the same period. The upstream data model nominally
// guarantees one target per category, but nothing enforces it, so the
// merge rule is explicit configuration instead of accidental map ordering.
type DuplicatePolicy int

const (
	// DuplicateNewestWins keeps the forecast with the latest creation
	// timestamp, falling back to sequence order when timestamps are
	// missing.
	DuplicateNewestWins DuplicatePolicy = iota
	// DuplicateLastWins keeps whichever forecast appears later in the
	// response sequence.
	DuplicateLastWins
	// DuplicateReject fails reconciliation with ErrDuplicateForecast.
	DuplicateReject
)

// ParseDuplicatePolicy maps a configuration string onto a policy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "newest":
		return DuplicateNewestWins, nil
	case "last":
		return DuplicateLastWins, nil
	case "reject":
		return DuplicateReject, nil
	default:
		return DuplicateNewestWins, fmt.Errorf("unknown duplicate policy %q", s)
	}
}

// ReconcileAnomalies counts records excluded from parts of reconciliation.
type ReconcileAnomalies struct {
	InvalidForecastAmounts    int
	InvalidTransactionAmounts int
}

func (a ReconcileAnomalies) Any() bool {
	return a.InvalidForecastAmounts > 0 || a.InvalidTransactionAmounts > 0
}

// ReconcileBudgets joins budget targets with actual spending for one month.
//
// One group is produced per distinct category referenced by the forecast
// sequence, seeded with the planned amount and actual zero. Transactions
// add to a group's actual when they fall in the reference month, reference
// the group's category and match its kind. Transactions without a matching
// forecast are out of scope for this view. A forecast with no transactions
// still yields a group.
//
// The output is sorted by category name then ID, so reconciliation is
// deterministic and idempotent for identical inputs.
func ReconcileBudgets(
	forecasts []models.Forecast,
	txs []models.Transaction,
	cats []models.Category,
	ref models.MonthRef,
	policy DuplicatePolicy,
) ([]models.BudgetGroup, ReconcileAnomalies, error) {
	var anomalies ReconcileAnomalies

	names := make(map[string]string, len(cats))
	for i := range cats {
		names[cats[i].ID] = cats[i].Name
	}

	groups := make(map[string]*models.BudgetGroup, len(forecasts))
	seeded := make(map[string]*models.Forecast, len(forecasts))

	for i := range forecasts {
		f := &forecasts[i]
		if f.Category == "" {
			continue
		}

		if prev, ok := seeded[f.Category]; ok {
			switch policy {
			case DuplicateReject:
				return nil, anomalies, fmt.Errorf("%w: %s", ErrDuplicateForecast, f.Category)
			case DuplicateNewestWins:
				if !newerThan(f, prev) {
					continue
				}
			case DuplicateLastWins:
				// fall through to overwrite
			}
		}

		planned := decimal.Zero
		if f.Amount.Valid {
			planned = f.Amount.Decimal
		} else {
			anomalies.InvalidForecastAmounts++
		}

		name, ok := names[f.Category]
		if !ok || name == "" {
			name = UnknownCategoryName
		}

		seeded[f.Category] = f
		groups[f.Category] = &models.BudgetGroup{
			CategoryID:   f.Category,
			CategoryName: name,
			Planned:      planned,
			Actual:       decimal.Zero,
			Kind:         f.Kind(),
			ForecastID:   f.ID,
		}
	}

	for i := range txs {
		tx := &txs[i]
		if !ref.Contains(tx.Date) {
			continue
		}
		group, ok := groups[tx.CategoryID()]
		if !ok {
			continue
		}
		if tx.Kind() != group.Kind {
			continue
		}
		if !tx.Amount.Valid {
			anomalies.InvalidTransactionAmounts++
			continue
		}
		group.Actual = group.Actual.Add(tx.Amount.Decimal)
	}

	out := make([]models.BudgetGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CategoryName != out[j].CategoryName {
			return out[i].CategoryName < out[j].CategoryName
		}
		return out[i].CategoryID < out[j].CategoryID
	})

	return out, anomalies, nil
}

// newerThan reports whether candidate should replace incumbent under
// DuplicateNewestWins. Missing timestamps lose to present ones; when both
// are missing the candidate wins, matching sequence order.
func newerThan(candidate, incumbent *models.Forecast) bool {
	switch {
	case candidate.CreatedAt.Valid && incumbent.CreatedAt.Valid:
		return candidate.CreatedAt.Time.After(incumbent.CreatedAt.Time)
	case candidate.CreatedAt.Valid:
		return true
	case incumbent.CreatedAt.Valid:
		return false
	default:
		return true
	}
}

// BudgetThresholds are the presentation cutoffs for budget classification,
// expressed as ratios of actual over planned. They are configuration, not
// arithmetic: the reconciler itself never consults them.
type BudgetThresholds struct {
	WarnRatio float64
	OverRatio float64
}

// DefaultBudgetThresholds returns the stock 85%/100% cutoffs.
func DefaultBudgetThresholds() BudgetThresholds {
	return BudgetThresholds{WarnRatio: 0.85, OverRatio: 1.0}
}

// ClassifyBudget labels an expense group as over or close to its target.
// Income groups are always normal. A zero-planned group with spending is
// over (the ratio saturates); with no spending it is normal.
func ClassifyBudget(g models.BudgetGroup, t BudgetThresholds) models.BudgetStatus {
	if g.Kind != models.KindExpense {
		return models.BudgetStatusNormal
	}

	if !g.Planned.IsPositive() {
		if g.Actual.IsPositive() {
			return models.BudgetStatusOver
		}
		return models.BudgetStatusNormal
	}

	ratio := g.Actual.Div(g.Planned)
	switch {
	case ratio.GreaterThan(decimal.NewFromFloat(t.OverRatio)):
		return models.BudgetStatusOver
	case ratio.GreaterThan(decimal.NewFromFloat(t.WarnRatio)):
		return models.BudgetStatusClose
	default:
		return models.BudgetStatusNormal
	}
}

// BudgetPercent returns the display progress of a group clamped to
// [0, 100]. Zero-planned groups report 100 when anything was spent and 0
// otherwise, never a division by zero.
func BudgetPercent(g models.BudgetGroup) float64 {
	if !g.Planned.IsPositive() {
		if g.Actual.IsPositive() {
			return 100
		}
		return 0
	}
	percent, _ := g.Actual.Div(g.Planned).Mul(decimal.NewFromInt(100)).Float64()
	return ClampPercent(percent)
}

// SumBudgetTotals adds up planned and actual across groups split by kind,
// mirroring the planning view header.
func SumBudgetTotals(groups []models.BudgetGroup) models.BudgetTotals {
	var totals models.BudgetTotals
	for i := range groups {
		g := &groups[i]
		switch g.Kind {
		case models.KindExpense:
			totals.PlannedExpense = totals.PlannedExpense.Add(g.Planned)
			totals.ActualExpense = totals.ActualExpense.Add(g.Actual)
		case models.KindIncome:
			totals.PlannedIncome = totals.PlannedIncome.Add(g.Planned)
			totals.ActualIncome = totals.ActualIncome.Add(g.Actual)
		}
	}
	return totals
}
