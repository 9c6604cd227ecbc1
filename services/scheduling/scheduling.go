package scheduling

import (
	"errors"
	"sort"
	"strings"
	"time"

	"healthhub/database"
	"healthhub/models"
	"healthhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// DefaultSchedulingService is the concrete resolver over the in-memory
// store. All slot/date comparisons happen in Loc, the facility
// timezone. Now is injectable for tests and defaults to time.Now.
type DefaultSchedulingService struct {
	Store *database.MemoryStore
	Loc   *time.Location
	Now   func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// AvailableSlots filters the specialist's declared slots down to those
// on the requested date that no non-canceled appointment occupies. The
// result preserves declared order; canceling a booking makes its slot
// reappear in its original position.
func (s *DefaultSchedulingService) AvailableSlots(specialistID, date string) ([]string, error) {
	day, err := time.ParseInLocation(dateLayout, date, s.Loc)
	if err != nil {
		return nil, NewBookingError(CodeInvalidDate, "date must be formatted YYYY-MM-DD")
	}

	sp, err := s.Store.GetSpecialist(specialistID)
	if err != nil {
		return nil, NewBookingError(CodeNotFound, "specialist not found")
	}

	taken := make(map[int64]bool)
	for _, a := range s.Store.AppointmentsBySpecialist(specialistID) {
		if a.Status != models.AppointmentCanceled {
			taken[a.Time.Unix()] = true
		}
	}

	slots := []string{}
	for _, t := range sp.Slots {
		local := t.In(s.Loc)
		y, m, d := local.Date()
		if y != day.Year() || m != day.Month() || d != day.Day() {
			continue
		}
		if taken[local.Unix()] {
			continue
		}
		slots = append(slots, local.Format(timeLayout))
	}
	return slots, nil
}

// Book validates the request and inserts the appointment. The conflict
// check and the insert run in one critical section inside the store, so
// two callers racing for the same specialist and instant cannot both
// succeed.
func (s *DefaultSchedulingService) Book(patientID string, req models.BookAppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(req.Reason) == "" {
		return nil, NewBookingError(CodeMissingReason, "a consultation reason is required")
	}

	day, err := time.ParseInLocation(dateLayout, req.Date, s.Loc)
	if err != nil {
		return nil, NewBookingError(CodeInvalidDate, "date must be formatted YYYY-MM-DD")
	}
	today := s.now().In(s.Loc)
	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.Loc)
	if day.Before(startOfToday) {
		return nil, NewBookingError(CodeInvalidDate, "cannot book an appointment in the past")
	}

	tod, err := time.ParseInLocation(timeLayout, req.TimeOfDay, s.Loc)
	if err != nil {
		return nil, NewBookingError(CodeSlotUnavailable, "time must be formatted HH:MM")
	}
	target := time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), 0, 0, s.Loc)

	sp, err := s.Store.GetSpecialist(req.SpecialistID)
	if err != nil {
		return nil, NewBookingError(CodeNotFound, "specialist not found")
	}

	hospitalID := req.HospitalID
	if hospitalID == "" {
		hospitalID = sp.HospitalID
	}
	if _, err := s.Store.GetHospital(hospitalID); err != nil {
		return nil, NewBookingError(CodeNotFound, "hospital not found")
	}

	declared := false
	for _, t := range sp.Slots {
		if t.In(s.Loc).Equal(target) {
			declared = true
			break
		}
	}
	if !declared {
		return nil, NewBookingError(CodeSlotUnavailable, "the requested time is not offered by this specialist")
	}

	appt := models.Appointment{
		ID:           uuid.New().String(),
		PatientID:    patientID,
		SpecialistID: sp.ID,
		HospitalID:   hospitalID,
		Time:         target,
		Status:       models.AppointmentScheduled,
		ReminderOn:   true,
		Reason:       req.Reason,
		CreatedAt:    s.now(),
	}

	if err := s.Store.InsertAppointmentIfFree(appt); err != nil {
		if errors.Is(err, database.ErrSlotTaken) {
			return nil, NewBookingError(CodeSlotUnavailable, "the requested time is already booked")
		}
		return nil, err
	}

	logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("specialistID", sp.ID),
		zap.Time("time", appt.Time))
	return &appt, nil
}

// Cancel marks a scheduled appointment canceled. Canceling anything
// already canceled or completed returns AlreadyFinal and leaves the
// record untouched.
func (s *DefaultSchedulingService) Cancel(appointmentID, byUserID string) (*models.Appointment, error) {
	updated, err := s.Store.UpdateAppointment(appointmentID, func(a *models.Appointment) error {
		if byUserID != "" && a.PatientID != byUserID {
			return NewBookingError(CodeNotFound, "appointment not found")
		}
		if a.Status != models.AppointmentScheduled {
			return NewBookingError(CodeAlreadyFinal, "appointment is already "+a.Status)
		}
		a.Status = models.AppointmentCanceled
		return nil
	})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, NewBookingError(CodeNotFound, "appointment not found")
		}
		return nil, err
	}
	return &updated, nil
}

// ToggleReminder flips the reminder flag. Deliberately unguarded: the
// flag flips even on canceled or completed appointments.
func (s *DefaultSchedulingService) ToggleReminder(appointmentID string) (*models.Appointment, error) {
	updated, err := s.Store.UpdateAppointment(appointmentID, func(a *models.Appointment) error {
		a.ReminderOn = !a.ReminderOn
		return nil
	})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, NewBookingError(CodeNotFound, "appointment not found")
		}
		return nil, err
	}
	return &updated, nil
}

// Partition splits the patient's appointments for display. A scheduled
// appointment whose time has passed is shown under past; its status is
// never rewritten here.
func (s *DefaultSchedulingService) Partition(patientID string) (*models.AppointmentPartition, error) {
	now := s.now()
	p := &models.AppointmentPartition{
		Upcoming: []models.Appointment{},
		Past:     []models.Appointment{},
		Canceled: []models.Appointment{},
	}
	for _, a := range s.Store.AppointmentsByPatient(patientID) {
		switch {
		case a.Status == models.AppointmentCanceled:
			p.Canceled = append(p.Canceled, a)
		case a.Status == models.AppointmentScheduled && a.Time.After(now):
			p.Upcoming = append(p.Upcoming, a)
		default:
			// completed, or scheduled with a past time
			p.Past = append(p.Past, a)
		}
	}
	sort.Slice(p.Upcoming, func(i, j int) bool { return p.Upcoming[i].Time.Before(p.Upcoming[j].Time) })
	sort.Slice(p.Past, func(i, j int) bool { return p.Past[i].Time.After(p.Past[j].Time) })
	sort.Slice(p.Canceled, func(i, j int) bool { return p.Canceled[i].Time.After(p.Canceled[j].Time) })
	return p, nil
}
