package models

// UserProfile carries the display-only user fields consumed by the
// dashboard greeting. Authentication itself is the backend's business.
type UserProfile struct {
	FirstName string `json:"first_name"`
	Currency  string `json:"currency"`
	Language  string `json:"language"`
}
