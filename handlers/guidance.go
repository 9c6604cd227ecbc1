package handlers

import (
	"net/http"

	"healthhub/models"
	"healthhub/services/guidance"
	"healthhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GuidanceHandler fronts the medical-guidance chat gateway.
type GuidanceHandler struct {
	Guidance guidance.GuidanceService
	Logger   *zap.Logger
}

func NewGuidanceHandler(svc guidance.GuidanceService, logger *zap.Logger) *GuidanceHandler {
	return &GuidanceHandler{Guidance: svc, Logger: logger}
}

// GuidanceChatHandler runs one chat turn. The client sends the prior
// conversation with each request; nothing is stored server-side.
func (h *GuidanceHandler) GuidanceChatHandler(c *gin.Context) {
	var req models.GuidanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Guidance.Ask(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		switch guidance.ErrorCode(err) {
		case guidance.CodeInvalidInput:
			status = http.StatusBadRequest
		case guidance.CodeUnavailable:
			status = http.StatusServiceUnavailable
		}
		h.Logger.Warn("guidance turn failed", zap.Error(err))
		utils.JSONError(c, status, "guidance failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}
