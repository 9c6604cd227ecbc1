package handlers

import (
	"net/http"

	"healthhub/database"
	"healthhub/middleware"
	"healthhub/services/notification"
	"healthhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VaccineHandler serves the vaccine catalog and waitlist signups.
type VaccineHandler struct {
	Store         *database.MemoryStore
	Notifications notification.NotificationService
	Logger        *zap.Logger
}

func NewVaccineHandler(store *database.MemoryStore, svc notification.NotificationService, logger *zap.Logger) *VaccineHandler {
	return &VaccineHandler{Store: store, Notifications: svc, Logger: logger}
}

// ListVaccinesHandler returns every vaccine with its stock level and
// waitlist.
func (h *VaccineHandler) ListVaccinesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vaccines": h.Store.ListVaccines()})
}

// JoinWaitlistHandler adds the acting user to a vaccine's waitlist.
func (h *VaccineHandler) JoinWaitlistHandler(c *gin.Context) {
	userID := middleware.UserID(c)
	vaccineID := c.Param("id")

	vaccine, err := h.Notifications.JoinWaitlist(c.Request.Context(), vaccineID, userID)
	if err != nil {
		status := http.StatusInternalServerError
		switch notification.ErrorCode(err) {
		case notification.CodeNotFound:
			status = http.StatusNotFound
		case notification.CodeAlreadyOnWaitlist:
			status = http.StatusConflict
		}
		h.Logger.Warn("waitlist signup rejected",
			zap.String("vaccineID", vaccineID),
			zap.String("userID", userID),
			zap.Error(err))
		utils.JSONError(c, status, "waitlist signup failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"vaccine": vaccine})
}
