package dto

import "fintrack/internal/models"

// BudgetGroupItem is one reconciled budget group plus its presentation
// classification. Percent is clamped to [0, 100] for progress rendering; a
// zero-planned group with spending reports 100 and status "over".
type BudgetGroupItem struct {
	models.BudgetGroup
	Percent float64             `json:"percent"`
	Status  models.BudgetStatus `json:"status"`
}

// PlanningResponse is the reconciled budget view for one month.
type PlanningResponse struct {
	Month    string              `json:"month"`
	Groups   []BudgetGroupItem   `json:"groups"`
	Totals   models.BudgetTotals `json:"totals"`
	Degraded []string            `json:"degraded,omitempty"`
}
