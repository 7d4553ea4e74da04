package services

import (
	"context"
	"log/slog"
	"time"

	"fintrack/internal/backend"
	"fintrack/internal/dto"
	"fintrack/internal/models"
)

type cardService struct {
	api         backend.FinanceAPI
	metrics     MetricsRecorderInterface
	warnPercent float64
}

// NewCardService creates a CardServiceInterface. warnPercent is the
// utilization above which a card is flagged for attention.
func NewCardService(api backend.FinanceAPI, metrics MetricsRecorderInterface, warnPercent float64) CardServiceInterface {
	return &cardService{
		api:         api,
		metrics:     metrics,
		warnPercent: warnPercent,
	}
}

func (s *cardService) GetCardsUsage(ctx context.Context) (*dto.CardsUsageResponse, error) {
	cards, err := s.api.CreditCards(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	items := buildCardUsageItems(cards, s.warnPercent)
	s.metrics.ObserveAggregationDuration("cards", time.Since(start))

	slog.Info("card usage derived", "card_count", len(items))

	return &dto.CardsUsageResponse{Cards: items}, nil
}

func (s *cardService) GetInvoiceSummary(ctx context.Context, ref models.MonthRef) (*dto.InvoiceSummaryResponse, error) {
	invoices, err := s.api.Invoices(ctx, ref)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	summary := ComputeInvoiceSummary(invoices)
	s.metrics.ObserveAggregationDuration("invoices", time.Since(start))

	slog.Info("invoice summary derived",
		"month", ref.String(),
		"invoice_count", len(invoices))

	return &dto.InvoiceSummaryResponse{
		Month:    ref.String(),
		Summary:  summary,
		Invoices: invoices,
	}, nil
}

// buildCardUsageItems derives utilization for each card and attaches the
// display classification.
func buildCardUsageItems(cards []models.CreditCard, warnPercent float64) []dto.CardUsageItem {
	items := make([]dto.CardUsageItem, 0, len(cards))
	for i := range cards {
		card := &cards[i]
		usage := ComputeCardUsage(*card)

		items = append(items, dto.CardUsageItem{
			CardID:         card.ID,
			Name:           card.Name,
			BankName:       card.BankName,
			Type:           card.Type,
			LastFourDigits: card.LastFourDigits,
			ClosingDay:     card.ClosingDay,
			DueDay:         card.DueDay,
			Color:          card.Color,
			Limit:          card.Limit.Decimal,
			AvailableLimit: card.AvailableLimit.Decimal,
			Used:           usage.Used,
			UsagePercent:   usage.UsagePercent,
			DisplayPercent: ClampPercent(usage.UsagePercent),
			Warning:        usage.UsagePercent > warnPercent,
			OverLimit:      usage.UsagePercent > 100,
		})
	}
	return items
}
