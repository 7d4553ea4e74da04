package models

import "strings"

// Transaction type values as the backend serializes them. The transactions
// endpoint uses uppercase while forecasts use lowercase, so comparisons go
// through Kind() instead of raw string equality.
const (
	TransactionTypeIncome  = "INCOME"
	TransactionTypeExpense = "EXPENSE"
)

// Kind is the normalized income/expense discriminator shared by
// transactions, categories and forecasts.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
	KindUnknown Kind = ""
)

// NormalizeKind maps any casing of income/expense onto a Kind.
func NormalizeKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return KindIncome
	case "expense":
		return KindExpense
	default:
		return KindUnknown
	}
}

// CategoryRef is the nested category object attached to a transaction.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// PaymentMethodRef is the nested payment method object attached to a
// transaction.
type PaymentMethodRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Transaction is a single money movement fetched from the backend.
// Immutable once fetched; the authoritative copy lives upstream.
type Transaction struct {
	ID            string            `json:"id"`
	Description   string            `json:"description"`
	Amount        Amount            `json:"amount"`
	Type          string            `json:"type"`
	Date          FlexTime          `json:"date"`
	Category      *CategoryRef      `json:"category,omitempty"`
	PaymentMethod *PaymentMethodRef `json:"payment_method,omitempty"`
}

// Kind returns the normalized transaction kind.
func (t *Transaction) Kind() Kind {
	return NormalizeKind(t.Type)
}

// CategoryID returns the referenced category ID, or empty when the
// transaction is uncategorized.
func (t *Transaction) CategoryID() string {
	if t.Category == nil {
		return ""
	}
	return t.Category.ID
}
