package models

import (
	"bytes"
	"strings"
	"time"
)

// flexTimeLayouts lists the timestamp encodings observed in backend
// responses, most specific first.
var flexTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FlexTime is a calendar timestamp decoded defensively from backend JSON.
// Unparseable input yields a zero value with Valid=false rather than an
// error: records with broken dates are excluded from month-scoped totals
// but must still flow through the rest of the aggregation.
type FlexTime struct {
	time.Time
	Valid bool
}

// NewFlexTime builds a valid FlexTime from a time value.
func NewFlexTime(t time.Time) FlexTime {
	return FlexTime{Time: t, Valid: true}
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "" || s == "null" {
		*t = FlexTime{}
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))

	for _, layout := range flexTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			t.Valid = true
			return nil
		}
	}

	*t = FlexTime{}
	return nil
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return t.Time.MarshalJSON()
}
