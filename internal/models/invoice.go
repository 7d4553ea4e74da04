package models

import "strings"

// Invoice status values as the backend serializes them.
const (
	InvoiceStatusOpen    = "OPEN"
	InvoiceStatusClosed  = "CLOSED"
	InvoiceStatusPaid    = "PAID"
	InvoiceStatusOverdue = "OVERDUE"
)

// InvoiceCardRef is the card summary nested inside an invoice.
type InvoiceCardRef struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	LastFourDigits string `json:"last_four_digits"`
	Color          string `json:"color,omitempty"`
	Brand          string `json:"brand,omitempty"`
	Limit          Amount `json:"limit"`
}

// Invoice is one monthly credit card statement. Month and year arrive as
// strings on the wire ("10", "2025").
type Invoice struct {
	ID          string         `json:"id"`
	Month       string         `json:"month"`
	Year        string         `json:"year"`
	Amount      Amount         `json:"amount"`
	Status      string         `json:"status"`
	ClosingDate FlexTime       `json:"closing_date"`
	DueDate     FlexTime       `json:"due_date"`
	CreditCard  InvoiceCardRef `json:"credit_card"`
}

// IsPaid reports whether the invoice has been settled.
func (i *Invoice) IsPaid() bool {
	return strings.EqualFold(i.Status, InvoiceStatusPaid)
}

// IsPayable reports whether the invoice is in a state where payment makes
// sense (closed or overdue, not yet paid).
func (i *Invoice) IsPayable() bool {
	s := strings.ToUpper(i.Status)
	return s == InvoiceStatusClosed || s == InvoiceStatusOverdue
}
