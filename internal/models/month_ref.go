package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year is out of the supported range")
)

// Year bounds accepted from request parameters. Anything outside is almost
// certainly a typo or a probe, not a real statement period.
const (
	MinYear = 1970
	MaxYear = 2100
)

// MonthRef identifies a calendar month. All month-scoped aggregation is
// keyed on a MonthRef so the all-time and month-scoped scopes cannot be
// mixed up by passing bare integers around.
type MonthRef struct {
	Year  int
	Month time.Month
}

// NewMonthRef validates and builds a MonthRef.
func NewMonthRef(year, month int) (MonthRef, error) {
	if month < 1 || month > 12 {
		return MonthRef{}, ErrInvalidMonth
	}
	if year < MinYear || year > MaxYear {
		return MonthRef{}, ErrInvalidYear
	}
	return MonthRef{Year: year, Month: time.Month(month)}, nil
}

// CurrentMonth returns the MonthRef for the current wall-clock month.
func CurrentMonth() MonthRef {
	now := time.Now()
	return MonthRef{Year: now.Year(), Month: now.Month()}
}

// Contains reports whether a timestamp falls inside the referenced month.
// Invalid timestamps are never contained.
func (r MonthRef) Contains(t FlexTime) bool {
	return t.Valid && t.Year() == r.Year && t.Month() == r.Month
}

// Start returns midnight on the first day of the month, UTC.
func (r MonthRef) Start() time.Time {
	return time.Date(r.Year, r.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns midnight on the first day of the following month, UTC.
func (r MonthRef) End() time.Time {
	return r.Start().AddDate(0, 1, 0)
}

func (r MonthRef) Prev() MonthRef {
	t := r.Start().AddDate(0, -1, 0)
	return MonthRef{Year: t.Year(), Month: t.Month()}
}

func (r MonthRef) Next() MonthRef {
	t := r.End()
	return MonthRef{Year: t.Year(), Month: t.Month()}
}

func (r MonthRef) String() string {
	return fmt.Sprintf("%04d-%02d", r.Year, int(r.Month))
}
