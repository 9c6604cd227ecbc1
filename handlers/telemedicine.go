package handlers

import (
	"net/http"

	"healthhub/middleware"
	"healthhub/services/telemedicine"
	"healthhub/utils"

	"github.com/gin-gonic/gin"
)

// TelemedicineHandler serves remote-consultation sessions.
type TelemedicineHandler struct {
	Sessions telemedicine.TelemedicineService
}

func NewTelemedicineHandler(svc telemedicine.TelemedicineService) *TelemedicineHandler {
	return &TelemedicineHandler{Sessions: svc}
}

// ListSessionsHandler returns the acting patient's sessions.
func (h *TelemedicineHandler) ListSessionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": h.Sessions.ListForPatient(middleware.UserID(c))})
}

type updateSessionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateSessionStatusHandler moves a session along its lifecycle.
func (h *TelemedicineHandler) UpdateSessionStatusHandler(c *gin.Context) {
	var req updateSessionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, err := h.Sessions.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		status := http.StatusInternalServerError
		switch telemedicine.ErrorCode(err) {
		case telemedicine.CodeNotFound:
			status = http.StatusNotFound
		case telemedicine.CodeInvalidTransition:
			status = http.StatusConflict
		}
		utils.JSONError(c, status, "session update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}
