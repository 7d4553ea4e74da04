package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/models"
)

func forecast(id, category string, amount float64, kind string) models.Forecast {
	return models.Forecast{
		ID:       id,
		Name:     "Budget " + category,
		Amount:   models.AmountFromFloat(amount),
		Category: category,
		Type:     kind,
	}
}

func categorizedTx(kind string, amount float64, category string, date time.Time) models.Transaction {
	t := tx(kind, amount, date)
	t.Category = &models.CategoryRef{ID: category}
	return t
}

func TestReconcileBudgets_JoinsPlannedAndActual(t *testing.T) {
	ref := octoberRef()
	forecasts := []models.Forecast{
		forecast("fc-1", "cat-food", 500, "expense"),
		forecast("fc-2", "cat-salary", 3000, "income"),
	}
	cats := []models.Category{
		{ID: "cat-food", Name: "Food", Type: "expense"},
		{ID: "cat-salary", Name: "Salary", Type: "income"},
	}
	txs := []models.Transaction{
		categorizedTx("EXPENSE", 200, "cat-food", time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC)),
		categorizedTx("EXPENSE", 150, "cat-food", time.Date(2025, time.October, 18, 0, 0, 0, 0, time.UTC)),
		categorizedTx("INCOME", 3000, "cat-salary", time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)),
	}

	groups, anomalies, err := ReconcileBudgets(forecasts, txs, cats, ref, DuplicateNewestWins)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.False(t, anomalies.Any())

	// Sorted by category name: Food before Salary.
	food := groups[0]
	assert.Equal(t, "cat-food", food.CategoryID)
	assert.Equal(t, "Food", food.CategoryName)
	assert.True(t, food.Planned.Equal(decimal.NewFromInt(500)))
	assert.True(t, food.Actual.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, models.KindExpense, food.Kind)

	salary := groups[1]
	assert.Equal(t, "cat-salary", salary.CategoryID)
	assert.True(t, salary.Actual.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, models.KindIncome, salary.Kind)
}

func TestReconcileBudgets_ForecastWithNoSpending(t *testing.T) {
	groups, _, err := ReconcileBudgets(
		[]models.Forecast{forecast("fc-1", "cat-gym", 120, "expense")},
		nil,
		[]models.Category{{ID: "cat-gym", Name: "Gym"}},
		octoberRef(),
		DuplicateNewestWins,
	)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.True(t, groups[0].Actual.IsZero())
}

func TestReconcileBudgets_TransactionsWithoutForecastExcluded(t *testing.T) {
	txs := []models.Transaction{
		categorizedTx("EXPENSE", 999, "cat-unbudgeted", time.Date(2025, time.October, 5, 0, 0, 0, 0, time.UTC)),
	}

	groups, _, err := ReconcileBudgets(nil, txs, nil, octoberRef(), DuplicateNewestWins)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestReconcileBudgets_OutOfMonthExcluded(t *testing.T) {
	forecasts := []models.Forecast{forecast("fc-1", "cat-food", 500, "expense")}
	txs := []models.Transaction{
		categorizedTx("EXPENSE", 100, "cat-food", time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC)),
		categorizedTx("EXPENSE", 50, "cat-food", time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)),
	}

	groups, _, err := ReconcileBudgets(forecasts, txs, nil, octoberRef(), DuplicateNewestWins)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.True(t, groups[0].Actual.Equal(decimal.NewFromInt(50)))
}

func TestReconcileBudgets_KindMismatchExcluded(t *testing.T) {
	// A refund recorded as income in a budgeted expense category must not
	// reduce the spent total.
	forecasts := []models.Forecast{forecast("fc-1", "cat-food", 500, "expense")}
	txs := []models.Transaction{
		categorizedTx("EXPENSE", 100, "cat-food", time.Date(2025, time.October, 2, 0, 0, 0, 0, time.UTC)),
		categorizedTx("INCOME", 30, "cat-food", time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC)),
	}

	groups, _, err := ReconcileBudgets(forecasts, txs, nil, octoberRef(), DuplicateNewestWins)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.True(t, groups[0].Actual.Equal(decimal.NewFromInt(100)))
}

func TestReconcileBudgets_UnknownCategoryName(t *testing.T) {
	groups, _, err := ReconcileBudgets(
		[]models.Forecast{forecast("fc-1", "cat-ghost", 100, "expense")},
		nil, nil, octoberRef(), DuplicateNewestWins,
	)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, UnknownCategoryName, groups[0].CategoryName)
}

func TestReconcileBudgets_UncategorizedForecastSkipped(t *testing.T) {
	groups, _, err := ReconcileBudgets(
		[]models.Forecast{forecast("fc-1", "", 100, "expense")},
		nil, nil, octoberRef(), DuplicateNewestWins,
	)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestReconcileBudgets_DuplicatePolicies(t *testing.T) {
	older := forecast("fc-old", "cat-food", 400, "expense")
	older.CreatedAt = models.NewFlexTime(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC))
	newer := forecast("fc-new", "cat-food", 600, "expense")
	newer.CreatedAt = models.NewFlexTime(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC))

	t.Run("newest wins regardless of sequence order", func(t *testing.T) {
		groups, _, err := ReconcileBudgets(
			[]models.Forecast{newer, older}, nil, nil, octoberRef(), DuplicateNewestWins)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, "fc-new", groups[0].ForecastID)
		assert.True(t, groups[0].Planned.Equal(decimal.NewFromInt(600)))
	})

	t.Run("newest wins falls back to sequence order without timestamps", func(t *testing.T) {
		a := forecast("fc-a", "cat-food", 100, "expense")
		b := forecast("fc-b", "cat-food", 200, "expense")
		groups, _, err := ReconcileBudgets(
			[]models.Forecast{a, b}, nil, nil, octoberRef(), DuplicateNewestWins)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, "fc-b", groups[0].ForecastID)
	})

	t.Run("last wins keeps sequence order", func(t *testing.T) {
		groups, _, err := ReconcileBudgets(
			[]models.Forecast{newer, older}, nil, nil, octoberRef(), DuplicateLastWins)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, "fc-old", groups[0].ForecastID)
	})

	t.Run("reject fails", func(t *testing.T) {
		_, _, err := ReconcileBudgets(
			[]models.Forecast{older, newer}, nil, nil, octoberRef(), DuplicateReject)
		assert.ErrorIs(t, err, ErrDuplicateForecast)
	})
}

func TestReconcileBudgets_Idempotent(t *testing.T) {
	forecasts := []models.Forecast{
		forecast("fc-1", "cat-food", 500, "expense"),
		forecast("fc-2", "cat-rent", 1200, "expense"),
	}
	cats := []models.Category{
		{ID: "cat-food", Name: "Food"},
		{ID: "cat-rent", Name: "Rent"},
	}
	txs := []models.Transaction{
		categorizedTx("EXPENSE", 100, "cat-food", time.Date(2025, time.October, 2, 0, 0, 0, 0, time.UTC)),
		categorizedTx("EXPENSE", 1200, "cat-rent", time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)),
	}

	first, _, err := ReconcileBudgets(forecasts, txs, cats, octoberRef(), DuplicateNewestWins)
	require.NoError(t, err)
	second, _, err := ReconcileBudgets(forecasts, txs, cats, octoberRef(), DuplicateNewestWins)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].CategoryID, second[i].CategoryID)
		assert.True(t, first[i].Planned.Equal(second[i].Planned))
		assert.True(t, first[i].Actual.Equal(second[i].Actual), "no accumulation drift across runs")
	}
}

func TestParseDuplicatePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    DuplicatePolicy
		wantErr bool
	}{
		{input: "", want: DuplicateNewestWins},
		{input: "newest", want: DuplicateNewestWins},
		{input: "Newest", want: DuplicateNewestWins},
		{input: "last", want: DuplicateLastWins},
		{input: "reject", want: DuplicateReject},
		{input: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuplicatePolicy(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyBudget(t *testing.T) {
	thresholds := DefaultBudgetThresholds()

	tests := []struct {
		name    string
		planned float64
		actual  float64
		kind    models.Kind
		want    models.BudgetStatus
	}{
		{name: "well under budget", planned: 500, actual: 100, kind: models.KindExpense, want: models.BudgetStatusNormal},
		{name: "at warn boundary stays normal", planned: 500, actual: 425, kind: models.KindExpense, want: models.BudgetStatusNormal},
		{name: "just over warn", planned: 500, actual: 426, kind: models.KindExpense, want: models.BudgetStatusClose},
		{name: "exactly at budget stays close", planned: 500, actual: 500, kind: models.KindExpense, want: models.BudgetStatusClose},
		{name: "over budget", planned: 500, actual: 550, kind: models.KindExpense, want: models.BudgetStatusOver},
		{name: "zero planned with spending saturates to over", planned: 0, actual: 10, kind: models.KindExpense, want: models.BudgetStatusOver},
		{name: "zero planned without spending is normal", planned: 0, actual: 0, kind: models.KindExpense, want: models.BudgetStatusNormal},
		{name: "income groups are always normal", planned: 100, actual: 5000, kind: models.KindIncome, want: models.BudgetStatusNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := models.BudgetGroup{
				Planned: decimal.NewFromFloat(tt.planned),
				Actual:  decimal.NewFromFloat(tt.actual),
				Kind:    tt.kind,
			}
			assert.Equal(t, tt.want, ClassifyBudget(g, thresholds))
		})
	}
}

func TestBudgetPercent(t *testing.T) {
	tests := []struct {
		name    string
		planned float64
		actual  float64
		want    float64
	}{
		{name: "half spent", planned: 500, actual: 250, want: 50},
		{name: "fully spent", planned: 500, actual: 500, want: 100},
		{name: "overspent clamps to 100", planned: 500, actual: 750, want: 100},
		{name: "zero planned with spending", planned: 0, actual: 10, want: 100},
		{name: "zero planned without spending", planned: 0, actual: 0, want: 0},
		{name: "negative actual clamps to 0", planned: 500, actual: -10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := models.BudgetGroup{
				Planned: decimal.NewFromFloat(tt.planned),
				Actual:  decimal.NewFromFloat(tt.actual),
				Kind:    models.KindExpense,
			}
			assert.InDelta(t, tt.want, BudgetPercent(g), 0.0001)
		})
	}
}

func TestSumBudgetTotals(t *testing.T) {
	groups := []models.BudgetGroup{
		{Kind: models.KindExpense, Planned: decimal.NewFromInt(500), Actual: decimal.NewFromInt(350)},
		{Kind: models.KindExpense, Planned: decimal.NewFromInt(120), Actual: decimal.NewFromInt(120)},
		{Kind: models.KindIncome, Planned: decimal.NewFromInt(3000), Actual: decimal.NewFromInt(2950)},
	}

	totals := SumBudgetTotals(groups)

	assert.True(t, totals.PlannedExpense.Equal(decimal.NewFromInt(620)))
	assert.True(t, totals.ActualExpense.Equal(decimal.NewFromInt(470)))
	assert.True(t, totals.PlannedIncome.Equal(decimal.NewFromInt(3000)))
	assert.True(t, totals.ActualIncome.Equal(decimal.NewFromInt(2950)))
}
