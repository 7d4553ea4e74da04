package dto

import "fintrack/internal/models"

// MonthQuery binds the month/year query parameters shared by every
// month-scoped view. Zero values mean "not provided".
type MonthQuery struct {
	Month int `query:"month" validate:"omitempty,month"`
	Year  int `query:"year" validate:"omitempty,year"`
}

// Resolve turns the query into a MonthRef, defaulting missing parts to the
// current month.
func (q MonthQuery) Resolve() (models.MonthRef, error) {
	now := models.CurrentMonth()

	month := q.Month
	if month == 0 {
		month = int(now.Month)
	}
	year := q.Year
	if year == 0 {
		year = now.Year
	}

	return models.NewMonthRef(year, month)
}
