package models

import "time"

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCanceled  = "canceled"
	AppointmentCompleted = "completed"
)

// Appointment represents a booked consultation slot. Appointments are
// never deleted; cancel and complete only move the status.
type Appointment struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patientId"`
	SpecialistID string    `json:"specialistId"`
	HospitalID   string    `json:"hospitalId"`
	Time         time.Time `json:"time"`
	Status       string    `json:"status"`
	ReminderOn   bool      `json:"reminderOn"`
	Reason       string    `json:"reason,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AppointmentPartition is the three-way display split of a patient's
// appointments. A scheduled appointment whose time has passed lands in
// Past without a status transition; "past" is a view, not a state.
type AppointmentPartition struct {
	Upcoming []Appointment `json:"upcoming"`
	Past     []Appointment `json:"past"`
	Canceled []Appointment `json:"canceled"`
}

// BookAppointmentRequest is the payload for booking a slot.
type BookAppointmentRequest struct {
	SpecialistID string `json:"specialistId" binding:"required"`
	HospitalID   string `json:"hospitalId"`
	Date         string `json:"date" binding:"required"`      // "YYYY-MM-DD" in the facility timezone
	TimeOfDay    string `json:"timeOfDay" binding:"required"` // "HH:MM", one of the advertised slot times
	Reason       string `json:"reason"`
}
