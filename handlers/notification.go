package handlers

import (
	"net/http"

	"healthhub/middleware"
	"healthhub/services/notification"
	"healthhub/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the per-user notification feed.
type NotificationHandler struct {
	Notifications notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Notifications: svc}
}

// ListNotificationsHandler returns the acting user's notifications,
// newest first.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.Notifications.ListForUser(middleware.UserID(c))})
}

// UnreadCountHandler returns how many notifications are still unread.
func (h *NotificationHandler) UnreadCountHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"unread": h.Notifications.UnreadCount(middleware.UserID(c))})
}

// MarkReadHandler marks a single notification as read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	n, err := h.Notifications.MarkRead(c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if notification.ErrorCode(err) == notification.CodeNotFound {
			status = http.StatusNotFound
		}
		utils.JSONError(c, status, "failed to mark notification", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": n})
}

// MarkAllReadHandler marks every unread notification as read and
// reports how many changed.
func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	updated := h.Notifications.MarkAllRead(middleware.UserID(c))
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
