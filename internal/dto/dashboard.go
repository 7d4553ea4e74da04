package dto

import "fintrack/internal/models"

// DashboardResponse is the derived headline view for one month.
type DashboardResponse struct {
	Month   string                `json:"month"`
	Profile *models.UserProfile   `json:"profile,omitempty"`
	Summary models.MonthlySummary `json:"summary"`
	Cards   []CardUsageItem       `json:"cards"`
	// Degraded lists resources that could not be fetched; their collections
	// were treated as empty. Presence means "render with a notice".
	Degraded []string `json:"degraded,omitempty"`
}
