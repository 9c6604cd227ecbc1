package models

import "time"

// Notification types.
const (
	NotificationAppointment = "appointment"
	NotificationVaccine     = "vaccine"
	NotificationSupply      = "supply"
	NotificationGeneral     = "general"
)

// Notification is an in-app message for one user. Read only ever moves
// false to true.
type Notification struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Type       string    `json:"type"`
	SentAt     time.Time `json:"sentAt"`
	Read       bool      `json:"read"`
	DetailsURL string    `json:"detailsUrl,omitempty"`
}
