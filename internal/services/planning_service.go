package services

import (
	"context"
	"log/slog"
	"time"

	"fintrack/internal/backend"
	"fintrack/internal/dto"
	"fintrack/internal/models"
)

type planningService struct {
	loader     *snapshotLoader
	metrics    MetricsRecorderInterface
	policy     DuplicatePolicy
	thresholds BudgetThresholds
}

// NewPlanningService creates a PlanningServiceInterface with an explicit
// duplicate-forecast policy and classification thresholds.
func NewPlanningService(
	api backend.FinanceAPI,
	metrics MetricsRecorderInterface,
	policy DuplicatePolicy,
	thresholds BudgetThresholds,
) PlanningServiceInterface {
	return &planningService{
		loader:     newSnapshotLoader(api, metrics),
		metrics:    metrics,
		policy:     policy,
		thresholds: thresholds,
	}
}

func (s *planningService) GetPlanning(ctx context.Context, ref models.MonthRef) (*dto.PlanningResponse, error) {
	snap, err := s.loader.LoadPlanning(ctx, ref)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	groups, anomalies, err := ReconcileBudgets(snap.Forecasts, snap.Transactions, snap.Categories, ref, s.policy)
	if err != nil {
		return nil, err
	}
	if anomalies.Any() {
		slog.Warn("budget reconciliation computed with coercion anomalies",
			"month", ref.String(),
			"invalid_forecast_amounts", anomalies.InvalidForecastAmounts,
			"invalid_transaction_amounts", anomalies.InvalidTransactionAmounts)
		for i := 0; i < anomalies.InvalidForecastAmounts+anomalies.InvalidTransactionAmounts; i++ {
			s.metrics.RecordCoercionAnomaly("amount")
		}
	}

	items := make([]dto.BudgetGroupItem, 0, len(groups))
	for _, g := range groups {
		items = append(items, dto.BudgetGroupItem{
			BudgetGroup: g,
			Percent:     BudgetPercent(g),
			Status:      ClassifyBudget(g, s.thresholds),
		})
	}
	totals := SumBudgetTotals(groups)
	s.metrics.ObserveAggregationDuration("planning", time.Since(start))

	slog.Info("planning reconciled",
		"month", ref.String(),
		"forecast_count", len(snap.Forecasts),
		"group_count", len(groups),
		"degraded", snap.Degraded)

	return &dto.PlanningResponse{
		Month:    ref.String(),
		Groups:   items,
		Totals:   totals,
		Degraded: snap.Degraded,
	}, nil
}
