package notification

import (
	"context"

	"healthhub/models"
)

// NotificationService manages vaccine waitlists and the in-app
// notification feed.
type NotificationService interface {
	// JoinWaitlist adds the user to the vaccine's waitlist and records
	// exactly one vaccine notification for them, as a single unit.
	JoinWaitlist(ctx context.Context, vaccineID, userID string) (*models.Vaccine, error)
	// MarkRead flips a notification to read; idempotent.
	MarkRead(notificationID string) (*models.Notification, error)
	// MarkAllRead marks all of the user's unread notifications and
	// returns how many transitioned.
	MarkAllRead(userID string) int
	// UnreadCount reports the user's unread notifications.
	UnreadCount(userID string) int
	// ListForUser returns the user's notifications, newest first.
	ListForUser(userID string) []models.Notification
}

// PushSender delivers a notification to a device. Implementations must
// tolerate missing tokens; push is best-effort on top of in-app state.
type PushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}
