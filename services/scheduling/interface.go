package scheduling

import (
	"healthhub/models"
)

// SchedulingService resolves slot availability and manages the
// appointment lifecycle.
type SchedulingService interface {
	// AvailableSlots returns the bookable times of day ("HH:MM") for a
	// specialist on a calendar date, in the specialist's declared slot
	// order.
	AvailableSlots(specialistID, date string) ([]string, error)
	// Book validates and creates an appointment for one of the
	// advertised slots.
	Book(patientID string, req models.BookAppointmentRequest) (*models.Appointment, error)
	// Cancel moves a scheduled appointment to canceled, freeing its slot.
	Cancel(appointmentID, byUserID string) (*models.Appointment, error)
	// ToggleReminder flips the reminder flag regardless of status.
	ToggleReminder(appointmentID string) (*models.Appointment, error)
	// Partition splits a patient's appointments into the upcoming/past/
	// canceled display groups.
	Partition(patientID string) (*models.AppointmentPartition, error)
}
