package services

import (
	"context"
	"log/slog"
	"time"

	"fintrack/internal/backend"
	"fintrack/internal/dto"
	"fintrack/internal/models"
)

type dashboardService struct {
	loader          *snapshotLoader
	metrics         MetricsRecorderInterface
	cardWarnPercent float64
}

// NewDashboardService creates a DashboardServiceInterface backed by the
// given backend client.
func NewDashboardService(api backend.FinanceAPI, metrics MetricsRecorderInterface, cardWarnPercent float64) DashboardServiceInterface {
	return &dashboardService{
		loader:          newSnapshotLoader(api, metrics),
		metrics:         metrics,
		cardWarnPercent: cardWarnPercent,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, ref models.MonthRef) (*dto.DashboardResponse, error) {
	snap, err := s.loader.LoadDashboard(ctx, ref)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	summary, anomalies := ComputeMonthlySummary(snap.Transactions, ref)
	s.recordSummaryAnomalies(anomalies, ref)

	cards := buildCardUsageItems(snap.Cards, s.cardWarnPercent)
	s.metrics.ObserveAggregationDuration("dashboard", time.Since(start))

	slog.Info("dashboard aggregated",
		"month", ref.String(),
		"transaction_count", len(snap.Transactions),
		"card_count", len(snap.Cards),
		"degraded", snap.Degraded)

	return &dto.DashboardResponse{
		Month:    ref.String(),
		Profile:  snap.Profile,
		Summary:  summary,
		Cards:    cards,
		Degraded: snap.Degraded,
	}, nil
}

func (s *dashboardService) recordSummaryAnomalies(anomalies SummaryAnomalies, ref models.MonthRef) {
	if !anomalies.Any() {
		return
	}

	slog.Warn("monthly summary computed with coercion anomalies",
		"month", ref.String(),
		"invalid_amounts", anomalies.InvalidAmounts,
		"invalid_dates", anomalies.InvalidDates,
		"unknown_kinds", anomalies.UnknownKinds)

	for i := 0; i < anomalies.InvalidAmounts; i++ {
		s.metrics.RecordCoercionAnomaly("amount")
	}
	for i := 0; i < anomalies.InvalidDates; i++ {
		s.metrics.RecordCoercionAnomaly("date")
	}
	for i := 0; i < anomalies.UnknownKinds; i++ {
		s.metrics.RecordCoercionAnomaly("kind")
	}
}
