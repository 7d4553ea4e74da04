package models

// Category labels transactions and anchors budget targets. Used only for
// joining and display; the backend owns the canonical list.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Kind returns the normalized category kind.
func (c *Category) Kind() Kind {
	return NormalizeKind(c.Type)
}

// PaymentMethod is a user-defined way of paying (card, pix, cash).
// Fetched for form population only; aggregation never joins on it.
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
