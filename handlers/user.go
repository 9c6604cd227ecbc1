package handlers

import (
	"errors"
	"net/http"

	"healthhub/database"
	"healthhub/middleware"
	"healthhub/models"
	"healthhub/services/user"
	"healthhub/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the acting user's profile and medical history.
type UserHandler struct {
	Users user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Users: svc}
}

func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	u, err := h.Users.GetProfile(middleware.UserID(c))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// UpdateProfileHandler applies a partial profile edit; omitted fields
// keep their stored values.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	var changes models.ProfileUpdate
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	u, err := h.Users.UpdateProfile(middleware.UserID(c), changes)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *UserHandler) MedicalHistoryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"records": h.Users.MedicalHistory(middleware.UserID(c))})
}

func (h *UserHandler) TreatmentsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"treatments": h.Users.ActiveTreatments(middleware.UserID(c))})
}
