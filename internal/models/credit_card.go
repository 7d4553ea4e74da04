package models

// Credit card brand values accepted by the backend.
const (
	CardTypeVisa       = "visa"
	CardTypeMastercard = "mastercard"
	CardTypeElo        = "elo"
	CardTypeAmex       = "amex"
	CardTypeOther      = "other"
)

// CreditCard is a credit card record fetched from the backend.
// AvailableLimit <= Limit is an upstream invariant; a violation means the
// backend shipped bad data and derivation must report it rather than crash.
type CreditCard struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	BankName       string `json:"bank_name,omitempty"`
	Type           string `json:"type"`
	LastFourDigits string `json:"last_four_digits"`
	Limit          Amount `json:"limit"`
	AvailableLimit Amount `json:"available_limit"`
	ClosingDay     int    `json:"closing_day"`
	DueDay         int    `json:"due_day"`
	Color          string `json:"color,omitempty"`
}
