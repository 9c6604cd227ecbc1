package notification

import (
	"context"
	"fmt"

	"healthhub/utils"

	"firebase.google.com/go/v4/messaging"
)

// FCMPushSender delivers notifications through Firebase Cloud
// Messaging using the shared client initialized at startup.
type FCMPushSender struct{}

func (FCMPushSender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("fcm client not initialized")
	}
	if token == "" {
		return fmt.Errorf("empty device token")
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
