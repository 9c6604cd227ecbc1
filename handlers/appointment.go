package handlers

import (
	"net/http"

	"healthhub/middleware"
	"healthhub/models"
	"healthhub/services/scheduling"
	"healthhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves slot availability and the appointment
// lifecycle.
type AppointmentHandler struct {
	Scheduler scheduling.SchedulingService
	Logger    *zap.Logger
}

func NewAppointmentHandler(svc scheduling.SchedulingService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Scheduler: svc, Logger: logger}
}

// bookingErrorStatus maps booking error codes onto HTTP statuses.
func bookingErrorStatus(err error) int {
	switch scheduling.ErrorCode(err) {
	case scheduling.CodeInvalidDate, scheduling.CodeMissingReason:
		return http.StatusBadRequest
	case scheduling.CodeNotFound:
		return http.StatusNotFound
	case scheduling.CodeSlotUnavailable, scheduling.CodeAlreadyFinal:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetAvailableSlotsHandler returns the bookable times for a specialist
// on ?date=YYYY-MM-DD.
func (h *AppointmentHandler) GetAvailableSlotsHandler(c *gin.Context) {
	specialistID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter 'date' is required (YYYY-MM-DD)")
		return
	}

	slots, err := h.Scheduler.AvailableSlots(specialistID, date)
	if err != nil {
		utils.JSONError(c, bookingErrorStatus(err), "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"specialistId": specialistID, "date": date, "slots": slots})
}

// BookAppointmentHandler books a slot for the acting patient.
func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	patientID := middleware.UserID(c)
	appt, err := h.Scheduler.Book(patientID, req)
	if err != nil {
		h.Logger.Warn("booking rejected", zap.String("patientID", patientID), zap.Error(err))
		utils.JSONError(c, bookingErrorStatus(err), "booking failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// ListAppointmentsHandler returns the acting patient's appointments
// split into upcoming, past and canceled.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	partition, err := h.Scheduler.Partition(middleware.UserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, partition)
}

// CancelAppointmentHandler cancels one of the acting patient's
// scheduled appointments.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	appt, err := h.Scheduler.Cancel(c.Param("id"), middleware.UserID(c))
	if err != nil {
		utils.JSONError(c, bookingErrorStatus(err), "cancel failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// ToggleReminderHandler flips the reminder flag on an appointment.
func (h *AppointmentHandler) ToggleReminderHandler(c *gin.Context) {
	appt, err := h.Scheduler.ToggleReminder(c.Param("id"))
	if err != nil {
		utils.JSONError(c, bookingErrorStatus(err), "reminder toggle failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}
