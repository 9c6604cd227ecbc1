package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"healthhub/database"
	"healthhub/models"
	"healthhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNotificationService is the concrete coordinator over the
// in-memory store. Push is optional; a nil Push leaves notifications
// in-app only.
type DefaultNotificationService struct {
	Store *database.MemoryStore
	Push  PushSender
	Now   func() time.Time
}

func (s *DefaultNotificationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// JoinWaitlist appends the user to the vaccine's waitlist and records
// the corresponding notification atomically: the store performs both
// mutations in one critical section, so no caller can observe one
// without the other. Push delivery happens after the state change and
// never affects the outcome.
func (s *DefaultNotificationService) JoinWaitlist(ctx context.Context, vaccineID, userID string) (*models.Vaccine, error) {
	logger := utils.GetLogger()

	user, err := s.Store.GetUser(userID)
	if err != nil {
		return nil, NewWaitlistError(CodeNotFound, "user not found")
	}
	vac, err := s.Store.GetVaccine(vaccineID)
	if err != nil {
		return nil, NewWaitlistError(CodeNotFound, "vaccine not found")
	}

	note := models.Notification{
		ID:         uuid.New().String(),
		UserID:     userID,
		Title:      "You joined the waitlist",
		Body:       fmt.Sprintf("You joined the waitlist for the %s vaccine. We will notify you when it becomes available.", vac.Name),
		Type:       models.NotificationVaccine,
		SentAt:     s.now(),
		Read:       false,
		DetailsURL: "/vaccines#" + vaccineID,
	}

	updated, err := s.Store.JoinWaitlist(vaccineID, userID, note)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrDuplicate):
			return nil, NewWaitlistError(CodeAlreadyOnWaitlist, "you are already on this waitlist")
		case errors.Is(err, database.ErrNotFound):
			return nil, NewWaitlistError(CodeNotFound, "vaccine not found")
		default:
			return nil, err
		}
	}

	logger.Info("waitlist joined",
		zap.String("vaccineID", vaccineID),
		zap.String("userID", userID),
		zap.Int("waitlistSize", len(updated.Waitlist)))

	if s.Push != nil && user.FCMToken != "" {
		if err := s.Push.Send(ctx, user.FCMToken, note.Title, note.Body, map[string]string{
			"type":      note.Type,
			"vaccineId": vaccineID,
		}); err != nil {
			logger.Warn("push delivery failed", zap.String("userID", userID), zap.Error(err))
		}
	}

	return &updated, nil
}

// MarkRead sets read=true. Marking an already-read notification
// succeeds and changes nothing.
func (s *DefaultNotificationService) MarkRead(notificationID string) (*models.Notification, error) {
	n, err := s.Store.MarkNotificationRead(notificationID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, NewWaitlistError(CodeNotFound, "notification not found")
		}
		return nil, err
	}
	return &n, nil
}

func (s *DefaultNotificationService) MarkAllRead(userID string) int {
	return s.Store.MarkAllNotificationsRead(userID)
}

func (s *DefaultNotificationService) UnreadCount(userID string) int {
	return s.Store.UnreadNotificationCount(userID)
}

func (s *DefaultNotificationService) ListForUser(userID string) []models.Notification {
	return s.Store.NotificationsByUser(userID)
}
