package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"fintrack/internal/backend"
	"fintrack/internal/models"
)

type CardServiceTestSuite struct {
	suite.Suite
	api *fakeFinanceAPI
	svc CardServiceInterface
}

func (s *CardServiceTestSuite) SetupTest() {
	s.api = &fakeFinanceAPI{}
	s.svc = NewCardService(s.api, NoopMetrics{}, 80)
}

func TestCardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CardServiceTestSuite))
}

func (s *CardServiceTestSuite) TestGetCardsUsage() {
	s.api.cards = []models.CreditCard{
		{
			ID:             "card-low",
			Name:           "Everyday",
			Limit:          models.AmountFromFloat(1000),
			AvailableLimit: models.AmountFromFloat(900),
		},
		{
			ID:             "card-over",
			Name:           "Travel",
			Limit:          models.AmountFromFloat(1000),
			AvailableLimit: models.AmountFromFloat(-100),
		},
	}

	resp, err := s.svc.GetCardsUsage(context.Background())
	s.Require().NoError(err)
	s.Require().Len(resp.Cards, 2)

	low := resp.Cards[0]
	s.InDelta(10.0, low.UsagePercent, 0.0001)
	s.False(low.Warning)
	s.False(low.OverLimit)

	over := resp.Cards[1]
	s.True(over.Used.Equal(decimal.NewFromInt(1100)))
	s.InDelta(110.0, over.UsagePercent, 0.0001, "raw percent reports the over-limit value")
	s.InDelta(100.0, over.DisplayPercent, 0.0001, "display percent is clamped")
	s.True(over.Warning)
	s.True(over.OverLimit)
}

func (s *CardServiceTestSuite) TestGetCardsUsage_WarningCutoffIsExclusive() {
	s.api.cards = []models.CreditCard{
		{
			ID:             "card-at-cutoff",
			Name:           "Groceries",
			Limit:          models.AmountFromFloat(1000),
			AvailableLimit: models.AmountFromFloat(200),
		},
		{
			ID:             "card-past-cutoff",
			Name:           "Fuel",
			Limit:          models.AmountFromFloat(1000),
			AvailableLimit: models.AmountFromFloat(195),
		},
	}

	resp, err := s.svc.GetCardsUsage(context.Background())
	s.Require().NoError(err)
	s.Require().Len(resp.Cards, 2)

	atCutoff := resp.Cards[0]
	s.InDelta(80.0, atCutoff.UsagePercent, 0.0001)
	s.False(atCutoff.Warning, "exactly at the cutoff is still normal")

	pastCutoff := resp.Cards[1]
	s.InDelta(80.5, pastCutoff.UsagePercent, 0.0001)
	s.True(pastCutoff.Warning)
}

func (s *CardServiceTestSuite) TestGetCardsUsage_Empty() {
	resp, err := s.svc.GetCardsUsage(context.Background())
	s.Require().NoError(err)
	s.Empty(resp.Cards)
}

func (s *CardServiceTestSuite) TestGetCardsUsage_AuthErrorPropagates() {
	s.api.cardsErr = &backend.APIError{StatusCode: http.StatusUnauthorized}

	_, err := s.svc.GetCardsUsage(context.Background())
	var apiErr *backend.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.True(apiErr.IsAuthError())
}

func (s *CardServiceTestSuite) TestGetInvoiceSummary() {
	s.api.invoices = []models.Invoice{
		{ID: "inv-1", Status: models.InvoiceStatusPaid, Amount: models.AmountFromFloat(300)},
		{ID: "inv-2", Status: models.InvoiceStatusOpen, Amount: models.AmountFromFloat(200)},
	}

	resp, err := s.svc.GetInvoiceSummary(context.Background(), octoberRef())
	s.Require().NoError(err)

	s.Equal("2025-10", resp.Month)
	s.True(resp.Summary.Total.Equal(decimal.NewFromInt(500)))
	s.True(resp.Summary.Paid.Equal(decimal.NewFromInt(300)))
	s.True(resp.Summary.Open.Equal(decimal.NewFromInt(200)))
	s.Len(resp.Invoices, 2)
}
