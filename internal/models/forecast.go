package models

// Forecast is a budget target for one category over one period.
// The backend serializes the category reference as a bare ID string and the
// type in lowercase, unlike transactions.
type Forecast struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Amount    Amount   `json:"amount"`
	Category  string   `json:"category"`
	Type      string   `json:"type"`
	Period    string   `json:"period"`
	StartDate FlexTime `json:"start_date"`
	EndDate   FlexTime `json:"end_date"`
	CreatedAt FlexTime `json:"created_at"`
}

// Kind returns the normalized forecast kind.
func (f *Forecast) Kind() Kind {
	return NormalizeKind(f.Type)
}
