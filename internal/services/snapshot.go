package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/backend"
	"fintrack/internal/models"
)

// DashboardSnapshot is the joined fetch result the dashboard aggregates
// over. Snapshots are freshly built per request and never shared, so the
// aggregators run without any locking.
type DashboardSnapshot struct {
	Ref          models.MonthRef
	Profile      *models.UserProfile
	Transactions []models.Transaction
	Cards        []models.CreditCard
	// Degraded lists resources whose fetch failed and was substituted with
	// an empty collection. The view still renders; callers surface a
	// non-fatal notice.
	Degraded []string
}

// PlanningSnapshot is the joined fetch result budget reconciliation runs on.
type PlanningSnapshot struct {
	Ref          models.MonthRef
	Forecasts    []models.Forecast
	Transactions []models.Transaction
	Categories   []models.Category
	Degraded     []string
}

// snapshotLoader issues the per-view fetches concurrently and joins them
// before any aggregation starts. Aggregation never runs on partial data: a
// failed fetch is replaced by an empty collection, an auth rejection aborts
// the whole load.
type snapshotLoader struct {
	api     backend.FinanceAPI
	metrics MetricsRecorderInterface
}

func newSnapshotLoader(api backend.FinanceAPI, metrics MetricsRecorderInterface) *snapshotLoader {
	return &snapshotLoader{api: api, metrics: metrics}
}

// degrade classifies a fetch failure. Auth rejections propagate so the
// caller answers 401 instead of rendering an empty view with someone's
// missing data; everything else degrades to an empty collection.
func (l *snapshotLoader) degrade(resource string, err error, mu *sync.Mutex, degraded *[]string) error {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.IsAuthError() {
		return err
	}
	if errors.Is(err, backend.ErrNoToken) {
		return err
	}

	slog.Warn("backend fetch failed, substituting empty collection",
		"resource", resource,
		"error", err)
	l.metrics.RecordDegradedSnapshot(resource)

	mu.Lock()
	*degraded = append(*degraded, resource)
	mu.Unlock()
	return nil
}

// LoadDashboard fetches profile, transactions and cards concurrently.
func (l *snapshotLoader) LoadDashboard(ctx context.Context, ref models.MonthRef) (*DashboardSnapshot, error) {
	snap := &DashboardSnapshot{
		Ref:          ref,
		Transactions: []models.Transaction{},
		Cards:        []models.CreditCard{},
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := l.api.Profile(ctx)
		if err != nil {
			return l.degrade("profile", err, &mu, &snap.Degraded)
		}
		snap.Profile = profile
		return nil
	})
	g.Go(func() error {
		txs, err := l.api.Transactions(ctx)
		if err != nil {
			return l.degrade("transactions", err, &mu, &snap.Degraded)
		}
		snap.Transactions = txs
		return nil
	})
	g.Go(func() error {
		cards, err := l.api.CreditCards(ctx)
		if err != nil {
			return l.degrade("credit_cards", err, &mu, &snap.Degraded)
		}
		snap.Cards = cards
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// LoadPlanning fetches forecasts, transactions and categories concurrently.
func (l *snapshotLoader) LoadPlanning(ctx context.Context, ref models.MonthRef) (*PlanningSnapshot, error) {
	snap := &PlanningSnapshot{
		Ref:          ref,
		Forecasts:    []models.Forecast{},
		Transactions: []models.Transaction{},
		Categories:   []models.Category{},
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		forecasts, err := l.api.Forecasts(ctx)
		if err != nil {
			return l.degrade("forecasts", err, &mu, &snap.Degraded)
		}
		snap.Forecasts = forecasts
		return nil
	})
	g.Go(func() error {
		txs, err := l.api.Transactions(ctx)
		if err != nil {
			return l.degrade("transactions", err, &mu, &snap.Degraded)
		}
		snap.Transactions = txs
		return nil
	})
	g.Go(func() error {
		cats, err := l.api.Categories(ctx)
		if err != nil {
			return l.degrade("categories", err, &mu, &snap.Degraded)
		}
		snap.Categories = cats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
