package models

import "time"

// Specialist represents a clinician offering bookable consultation slots.
// Slots is the declared sequence of start times, in the order the
// specialist published them; booking never mutates it.
type Specialist struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Specialty  string      `json:"specialty"`
	HospitalID string      `json:"hospitalId"`
	Slots      []time.Time `json:"slots,omitempty"`
	AvatarURL  string      `json:"avatarUrl,omitempty"`
	Bio        string      `json:"bio,omitempty"`
}
