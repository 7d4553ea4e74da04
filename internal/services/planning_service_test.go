package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"fintrack/internal/models"
)

type PlanningServiceTestSuite struct {
	suite.Suite
	api *fakeFinanceAPI
}

func (s *PlanningServiceTestSuite) SetupTest() {
	s.api = &fakeFinanceAPI{}
}

func (s *PlanningServiceTestSuite) newService(policy DuplicatePolicy) PlanningServiceInterface {
	return NewPlanningService(s.api, NoopMetrics{}, policy, DefaultBudgetThresholds())
}

func TestPlanningServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlanningServiceTestSuite))
}

func (s *PlanningServiceTestSuite) TestGetPlanning_ReconcilesAndClassifies() {
	s.api.forecasts = []models.Forecast{
		forecast("fc-food", "cat-food", 500, "expense"),
		forecast("fc-rent", "cat-rent", 1200, "expense"),
	}
	s.api.categories = []models.Category{
		{ID: "cat-food", Name: "Food"},
		{ID: "cat-rent", Name: "Rent"},
	}
	s.api.transactions = []models.Transaction{
		categorizedTx("EXPENSE", 550, "cat-food", time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC)),
		categorizedTx("EXPENSE", 1200, "cat-rent", time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)),
	}

	resp, err := s.newService(DuplicateNewestWins).GetPlanning(context.Background(), octoberRef())
	s.Require().NoError(err)

	s.Equal("2025-10", resp.Month)
	s.Require().Len(resp.Groups, 2)

	food := resp.Groups[0]
	s.Equal("Food", food.CategoryName)
	s.True(food.Actual.Equal(decimal.NewFromInt(550)))
	s.Equal(models.BudgetStatusOver, food.Status)
	s.InDelta(100.0, food.Percent, 0.0001, "display percent is clamped even when overspent")

	rent := resp.Groups[1]
	s.Equal(models.BudgetStatusClose, rent.Status, "spending exactly the target classifies as close")
	s.InDelta(100.0, rent.Percent, 0.0001)

	s.True(resp.Totals.PlannedExpense.Equal(decimal.NewFromInt(1700)))
	s.True(resp.Totals.ActualExpense.Equal(decimal.NewFromInt(1750)))
}

func (s *PlanningServiceTestSuite) TestGetPlanning_RejectPolicySurfacesDuplicate() {
	s.api.forecasts = []models.Forecast{
		forecast("fc-1", "cat-food", 500, "expense"),
		forecast("fc-2", "cat-food", 600, "expense"),
	}

	_, err := s.newService(DuplicateReject).GetPlanning(context.Background(), octoberRef())
	s.ErrorIs(err, ErrDuplicateForecast)
}

func (s *PlanningServiceTestSuite) TestGetPlanning_DegradesOnCategoryFetchFailure() {
	s.api.forecasts = []models.Forecast{forecast("fc-1", "cat-food", 500, "expense")}
	s.api.categoriesErr = errors.New("connection reset")

	resp, err := s.newService(DuplicateNewestWins).GetPlanning(context.Background(), octoberRef())
	s.Require().NoError(err)

	s.Contains(resp.Degraded, "categories")
	s.Require().Len(resp.Groups, 1)
	s.Equal(UnknownCategoryName, resp.Groups[0].CategoryName)
}

func (s *PlanningServiceTestSuite) TestGetPlanning_EmptyBackend() {
	resp, err := s.newService(DuplicateNewestWins).GetPlanning(context.Background(), octoberRef())
	s.Require().NoError(err)

	s.Empty(resp.Groups)
	s.True(resp.Totals.PlannedExpense.IsZero())
}
