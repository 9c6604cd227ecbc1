package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthhub/database"
	"healthhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePush struct {
	sent []string
	err  error
}

func (f *fakePush) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	f.sent = append(f.sent, token)
	return f.err
}

func newTestService(push PushSender) (*DefaultNotificationService, *database.MemoryStore) {
	store := database.NewMemoryStore()
	store.PutUser(models.User{ID: "user-1", Name: "Amina", Role: models.RolePatient, FCMToken: "token-1"})
	store.PutUser(models.User{ID: "user-2", Name: "Brian", Role: models.RolePatient})
	store.PutVaccine(models.Vaccine{ID: "vaccine-1", Name: "Measles", Stock: 0, Waitlist: []string{}})
	return &DefaultNotificationService{
		Store: store,
		Push:  push,
		Now:   func() time.Time { return time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC) },
	}, store
}

func TestJoinWaitlistRecordsNotification(t *testing.T) {
	push := &fakePush{}
	svc, store := newTestService(push)

	vac, err := svc.JoinWaitlist(context.Background(), "vaccine-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, vac.Waitlist)

	notes := store.NotificationsByUser("user-1")
	require.Len(t, notes, 1)
	assert.Equal(t, models.NotificationVaccine, notes[0].Type)
	assert.False(t, notes[0].Read)
	assert.Contains(t, notes[0].Body, "Measles")

	assert.Equal(t, []string{"token-1"}, push.sent)
}

func TestJoinWaitlistTwiceIsRejected(t *testing.T) {
	svc, store := newTestService(nil)

	_, err := svc.JoinWaitlist(context.Background(), "vaccine-1", "user-1")
	require.NoError(t, err)

	_, err = svc.JoinWaitlist(context.Background(), "vaccine-1", "user-1")
	assert.Equal(t, CodeAlreadyOnWaitlist, ErrorCode(err))

	// The rejected join must not add a second notification.
	assert.Len(t, store.NotificationsByUser("user-1"), 1)

	vac, err := store.GetVaccine("vaccine-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, vac.Waitlist)
}

func TestJoinWaitlistUnknownVaccine(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.JoinWaitlist(context.Background(), "vaccine-404", "user-1")
	assert.Equal(t, CodeNotFound, ErrorCode(err))
}

func TestJoinWaitlistUnknownUser(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.JoinWaitlist(context.Background(), "vaccine-1", "user-404")
	assert.Equal(t, CodeNotFound, ErrorCode(err))
}

func TestJoinWaitlistPushFailureDoesNotFailJoin(t *testing.T) {
	push := &fakePush{err: errors.New("fcm unreachable")}
	svc, store := newTestService(push)

	vac, err := svc.JoinWaitlist(context.Background(), "vaccine-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, vac.Waitlist)
	assert.Len(t, store.NotificationsByUser("user-1"), 1)
}

func TestJoinWaitlistSkipsPushWithoutToken(t *testing.T) {
	push := &fakePush{}
	svc, _ := newTestService(push)

	_, err := svc.JoinWaitlist(context.Background(), "vaccine-1", "user-2")
	require.NoError(t, err)
	assert.Empty(t, push.sent)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	svc, store := newTestService(nil)
	store.InsertNotification(models.Notification{ID: "note-1", UserID: "user-1"})

	n, err := svc.MarkRead("note-1")
	require.NoError(t, err)
	assert.True(t, n.Read)

	n, err = svc.MarkRead("note-1")
	require.NoError(t, err)
	assert.True(t, n.Read)

	_, err = svc.MarkRead("note-404")
	assert.Equal(t, CodeNotFound, ErrorCode(err))
}

func TestMarkAllReadClearsUnreadCount(t *testing.T) {
	svc, store := newTestService(nil)
	store.InsertNotification(models.Notification{ID: "note-1", UserID: "user-1"})
	store.InsertNotification(models.Notification{ID: "note-2", UserID: "user-1"})
	store.InsertNotification(models.Notification{ID: "note-3", UserID: "user-1", Read: true})
	store.InsertNotification(models.Notification{ID: "note-4", UserID: "user-2"})

	assert.Equal(t, 2, svc.UnreadCount("user-1"))

	updated := svc.MarkAllRead("user-1")
	assert.Equal(t, 2, updated)
	assert.Equal(t, 0, svc.UnreadCount("user-1"))

	// Other users are untouched.
	assert.Equal(t, 1, svc.UnreadCount("user-2"))

	// A second pass has nothing left to mark.
	assert.Equal(t, 0, svc.MarkAllRead("user-1"))
}

func TestListForUserNewestFirst(t *testing.T) {
	svc, store := newTestService(nil)
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	store.InsertNotification(models.Notification{ID: "note-old", UserID: "user-1", SentAt: base.Add(-time.Hour)})
	store.InsertNotification(models.Notification{ID: "note-new", UserID: "user-1", SentAt: base})

	notes := svc.ListForUser("user-1")
	require.Len(t, notes, 2)
	assert.Equal(t, "note-new", notes[0].ID)
	assert.Equal(t, "note-old", notes[1].ID)
}
