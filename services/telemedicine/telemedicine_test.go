package telemedicine

import (
	"testing"
	"time"

	"healthhub/database"
	"healthhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*DefaultTelemedicineService, *database.MemoryStore) {
	store := database.NewMemoryStore()
	store.PutSession(models.TelemedicineSession{
		ID:        "tele-1",
		PatientID: "user-1",
		Time:      time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC),
		Status:    models.SessionScheduled,
	})
	return &DefaultTelemedicineService{Store: store}, store
}

func TestSessionLifecycle(t *testing.T) {
	svc, _ := newTestService()

	sess, err := svc.UpdateStatus("tele-1", models.SessionInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.SessionInProgress, sess.Status)

	sess, err = svc.UpdateStatus("tele-1", models.SessionFinished)
	require.NoError(t, err)
	assert.Equal(t, models.SessionFinished, sess.Status)
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"scheduled cannot finish", models.SessionScheduled, models.SessionFinished},
		{"finished is terminal", models.SessionFinished, models.SessionInProgress},
		{"canceled is terminal", models.SessionCanceled, models.SessionScheduled},
		{"in-progress cannot reschedule", models.SessionInProgress, models.SessionScheduled},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, store := newTestService()
			store.PutSession(models.TelemedicineSession{ID: "tele-x", PatientID: "user-1", Status: tc.from})

			_, err := svc.UpdateStatus("tele-x", tc.to)
			assert.Equal(t, CodeInvalidTransition, ErrorCode(err))

			stored, err := store.GetSession("tele-x")
			require.NoError(t, err)
			assert.Equal(t, tc.from, stored.Status)
		})
	}
}

func TestUpdateStatusUnknownSession(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateStatus("tele-404", models.SessionInProgress)
	assert.Equal(t, CodeNotFound, ErrorCode(err))
}

func TestListForPatient(t *testing.T) {
	svc, store := newTestService()
	store.PutSession(models.TelemedicineSession{
		ID:        "tele-2",
		PatientID: "user-1",
		Time:      time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Status:    models.SessionScheduled,
	})
	store.PutSession(models.TelemedicineSession{ID: "tele-3", PatientID: "user-2"})

	sessions := svc.ListForPatient("user-1")
	require.Len(t, sessions, 2)
	assert.Equal(t, "tele-2", sessions[0].ID)
}
