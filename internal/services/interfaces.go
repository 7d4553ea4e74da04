package services

import (
	"context"
	"time"

	"fintrack/internal/backend"
	"fintrack/internal/dto"
	"fintrack/internal/models"
)

// DashboardServiceInterface derives the monthly headline view: all-time
// balance, month-scoped income and expense, greeting profile and card
// utilization.
type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context, ref models.MonthRef) (*dto.DashboardResponse, error)
}

// PlanningServiceInterface reconciles budget targets against actual
// spending for one month.
type PlanningServiceInterface interface {
	GetPlanning(ctx context.Context, ref models.MonthRef) (*dto.PlanningResponse, error)
}

// CardServiceInterface derives credit card utilization and the monthly
// invoice roll-up.
type CardServiceInterface interface {
	GetCardsUsage(ctx context.Context) (*dto.CardsUsageResponse, error)
	GetInvoiceSummary(ctx context.Context, ref models.MonthRef) (*dto.InvoiceSummaryResponse, error)
}

// MetricsRecorderInterface receives operational measurements from the
// fetch and aggregation layers.
type MetricsRecorderInterface interface {
	backend.FetchObserver
	ObserveAggregationDuration(view string, duration time.Duration)
	RecordCoercionAnomaly(field string)
	RecordDegradedSnapshot(resource string)
}
