package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler so route registration
// stays in one place.
type HandlerBundle struct {
	// Directory endpoints.
	ListSpecialistsHandler gin.HandlerFunc
	GetSpecialistHandler   gin.HandlerFunc
	ListHospitalsHandler   gin.HandlerFunc
	GetHospitalHandler     gin.HandlerFunc

	// Scheduling endpoints.
	GetAvailableSlotsHandler gin.HandlerFunc
	BookAppointmentHandler   gin.HandlerFunc
	ListAppointmentsHandler  gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc
	ToggleReminderHandler    gin.HandlerFunc

	// Vaccine endpoints.
	ListVaccinesHandler gin.HandlerFunc
	JoinWaitlistHandler gin.HandlerFunc

	// Notification endpoints.
	ListNotificationsHandler gin.HandlerFunc
	UnreadCountHandler       gin.HandlerFunc
	MarkReadHandler          gin.HandlerFunc
	MarkAllReadHandler       gin.HandlerFunc

	// Telemedicine endpoints.
	ListSessionsHandler        gin.HandlerFunc
	UpdateSessionStatusHandler gin.HandlerFunc

	// Profile & history endpoints.
	GetProfileHandler     gin.HandlerFunc
	UpdateProfileHandler  gin.HandlerFunc
	MedicalHistoryHandler gin.HandlerFunc
	TreatmentsHandler     gin.HandlerFunc

	// Guidance endpoint.
	GuidanceChatHandler gin.HandlerFunc
}
