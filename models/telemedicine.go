package models

import "time"

// Telemedicine session statuses.
const (
	SessionScheduled  = "scheduled"
	SessionInProgress = "in-progress"
	SessionFinished   = "finished"
	SessionCanceled   = "canceled"
)

// TelemedicineSession represents a remote consultation.
type TelemedicineSession struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patientId"`
	SpecialistID string    `json:"specialistId"`
	Time         time.Time `json:"time"`
	VideoLink    string    `json:"videoLink,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
}
