package scheduling

import (
	"testing"
	"time"

	"healthhub/database"
	"healthhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

// newTestService seeds one hospital and one specialist with three
// declared slots on 2026-03-11.
func newTestService() (*DefaultSchedulingService, *database.MemoryStore) {
	store := database.NewMemoryStore()
	store.PutHospital(models.Hospital{ID: "hospital-1", Name: "Valley General"})
	store.PutSpecialist(models.Specialist{
		ID:         "specialist-1",
		Name:       "Dr. Reyes",
		Specialty:  "Cardiology",
		HospitalID: "hospital-1",
		Slots: []time.Time{
			time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 11, 11, 0, 0, 0, time.UTC),
		},
	})
	svc := &DefaultSchedulingService{
		Store: store,
		Loc:   time.UTC,
		Now:   func() time.Time { return testNow },
	}
	return svc, store
}

func bookReq(timeOfDay string) models.BookAppointmentRequest {
	return models.BookAppointmentRequest{
		SpecialistID: "specialist-1",
		Date:         "2026-03-11",
		TimeOfDay:    timeOfDay,
		Reason:       "chest pain follow-up",
	}
}

func TestAvailableSlotsReturnsDeclaredOrder(t *testing.T) {
	svc, _ := newTestService()

	slots, err := svc.AvailableSlots("specialist-1", "2026-03-11")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slots)
}

func TestAvailableSlotsEmptyDay(t *testing.T) {
	svc, _ := newTestService()

	slots, err := svc.AvailableSlots("specialist-1", "2026-03-12")
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestAvailableSlotsValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AvailableSlots("specialist-1", "11-03-2026")
	assert.Equal(t, CodeInvalidDate, ErrorCode(err))

	_, err = svc.AvailableSlots("specialist-404", "2026-03-11")
	assert.Equal(t, CodeNotFound, ErrorCode(err))
}

func TestBookRemovesSlotFromAvailability(t *testing.T) {
	svc, _ := newTestService()

	appt, err := svc.Book("user-1", bookReq("10:00"))
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentScheduled, appt.Status)
	assert.True(t, appt.ReminderOn)
	assert.Equal(t, "hospital-1", appt.HospitalID)

	slots, err := svc.AvailableSlots("specialist-1", "2026-03-11")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00"}, slots)
}

func TestBookSameSlotTwiceConflicts(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Book("user-1", bookReq("10:00"))
	require.NoError(t, err)

	_, err = svc.Book("user-2", bookReq("10:00"))
	assert.Equal(t, CodeSlotUnavailable, ErrorCode(err))
}

func TestBookValidation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name     string
		mutate   func(*models.BookAppointmentRequest)
		wantCode string
	}{
		{
			name:     "missing reason",
			mutate:   func(r *models.BookAppointmentRequest) { r.Reason = "  " },
			wantCode: CodeMissingReason,
		},
		{
			name:     "malformed date",
			mutate:   func(r *models.BookAppointmentRequest) { r.Date = "March 11" },
			wantCode: CodeInvalidDate,
		},
		{
			name:     "date in the past",
			mutate:   func(r *models.BookAppointmentRequest) { r.Date = "2026-03-09" },
			wantCode: CodeInvalidDate,
		},
		{
			name:     "unknown specialist",
			mutate:   func(r *models.BookAppointmentRequest) { r.SpecialistID = "specialist-404" },
			wantCode: CodeNotFound,
		},
		{
			name:     "unknown hospital",
			mutate:   func(r *models.BookAppointmentRequest) { r.HospitalID = "hospital-404" },
			wantCode: CodeNotFound,
		},
		{
			name:     "time not offered",
			mutate:   func(r *models.BookAppointmentRequest) { r.TimeOfDay = "09:30" },
			wantCode: CodeSlotUnavailable,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := bookReq("09:00")
			tc.mutate(&req)
			_, err := svc.Book("user-1", req)
			assert.Equal(t, tc.wantCode, ErrorCode(err))
		})
	}
}

func TestBookToday(t *testing.T) {
	svc, store := newTestService()
	store.PutSpecialist(models.Specialist{
		ID:         "specialist-2",
		Name:       "Dr. Okoth",
		Specialty:  "Pediatrics",
		HospitalID: "hospital-1",
		Slots:      []time.Time{time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)},
	})

	appt, err := svc.Book("user-1", models.BookAppointmentRequest{
		SpecialistID: "specialist-2",
		Date:         "2026-03-10",
		TimeOfDay:    "15:00",
		Reason:       "fever",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC), appt.Time.UTC())
}

func TestCancelRestoresSlotInDeclaredPosition(t *testing.T) {
	svc, _ := newTestService()

	appt, err := svc.Book("user-1", bookReq("10:00"))
	require.NoError(t, err)

	canceled, err := svc.Cancel(appt.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCanceled, canceled.Status)

	slots, err := svc.AvailableSlots("specialist-1", "2026-03-11")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slots)
}

func TestCancelTwiceIsRejected(t *testing.T) {
	svc, _ := newTestService()

	appt, err := svc.Book("user-1", bookReq("09:00"))
	require.NoError(t, err)

	_, err = svc.Cancel(appt.ID, "user-1")
	require.NoError(t, err)

	_, err = svc.Cancel(appt.ID, "user-1")
	assert.Equal(t, CodeAlreadyFinal, ErrorCode(err))
}

func TestCancelByAnotherPatient(t *testing.T) {
	svc, _ := newTestService()

	appt, err := svc.Book("user-1", bookReq("09:00"))
	require.NoError(t, err)

	_, err = svc.Cancel(appt.ID, "user-2")
	assert.Equal(t, CodeNotFound, ErrorCode(err))

	got, err := svc.Store.GetAppointment(appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentScheduled, got.Status)
}

func TestCancelCompletedIsRejected(t *testing.T) {
	svc, store := newTestService()
	store.PutAppointment(models.Appointment{
		ID:           "apt-done",
		PatientID:    "user-1",
		SpecialistID: "specialist-1",
		Time:         time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Status:       models.AppointmentCompleted,
	})

	_, err := svc.Cancel("apt-done", "user-1")
	assert.Equal(t, CodeAlreadyFinal, ErrorCode(err))
}

func TestToggleReminderFlipsRegardlessOfStatus(t *testing.T) {
	svc, store := newTestService()
	store.PutAppointment(models.Appointment{
		ID:         "apt-canceled",
		PatientID:  "user-1",
		Status:     models.AppointmentCanceled,
		ReminderOn: false,
	})

	appt, err := svc.ToggleReminder("apt-canceled")
	require.NoError(t, err)
	assert.True(t, appt.ReminderOn)

	appt, err = svc.ToggleReminder("apt-canceled")
	require.NoError(t, err)
	assert.False(t, appt.ReminderOn)
}

func TestPartitionGroups(t *testing.T) {
	svc, store := newTestService()
	store.PutAppointment(models.Appointment{
		ID: "apt-upcoming", PatientID: "user-1", SpecialistID: "specialist-1",
		Time: testNow.Add(24 * time.Hour), Status: models.AppointmentScheduled,
	})
	store.PutAppointment(models.Appointment{
		ID: "apt-completed", PatientID: "user-1", SpecialistID: "specialist-1",
		Time: testNow.Add(-48 * time.Hour), Status: models.AppointmentCompleted,
	})
	store.PutAppointment(models.Appointment{
		ID: "apt-canceled", PatientID: "user-1", SpecialistID: "specialist-1",
		Time: testNow.Add(48 * time.Hour), Status: models.AppointmentCanceled,
	})
	// Scheduled but its time already passed: shown as past, status kept.
	store.PutAppointment(models.Appointment{
		ID: "apt-missed", PatientID: "user-1", SpecialistID: "specialist-1",
		Time: testNow.Add(-2 * time.Hour), Status: models.AppointmentScheduled,
	})
	store.PutAppointment(models.Appointment{
		ID: "apt-other", PatientID: "user-2", SpecialistID: "specialist-1",
		Time: testNow.Add(24 * time.Hour), Status: models.AppointmentScheduled,
	})

	p, err := svc.Partition("user-1")
	require.NoError(t, err)

	require.Len(t, p.Upcoming, 1)
	assert.Equal(t, "apt-upcoming", p.Upcoming[0].ID)

	require.Len(t, p.Past, 2)
	assert.Equal(t, "apt-missed", p.Past[0].ID)
	assert.Equal(t, "apt-completed", p.Past[1].ID)
	assert.Equal(t, models.AppointmentScheduled, p.Past[0].Status)

	require.Len(t, p.Canceled, 1)
	assert.Equal(t, "apt-canceled", p.Canceled[0].ID)

	stored, err := store.GetAppointment("apt-missed")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentScheduled, stored.Status)
}
