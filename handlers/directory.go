package handlers

import (
	"errors"
	"net/http"

	"healthhub/database"
	"healthhub/services/directory"
	"healthhub/utils"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the specialist and hospital directory pages.
type DirectoryHandler struct {
	Directory directory.DirectoryService
}

func NewDirectoryHandler(svc directory.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Directory: svc}
}

// ListSpecialistsHandler returns all specialists, optionally filtered
// by ?specialty=.
func (h *DirectoryHandler) ListSpecialistsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"specialists": h.Directory.ListSpecialists(c.Query("specialty"))})
}

func (h *DirectoryHandler) GetSpecialistHandler(c *gin.Context) {
	sp, err := h.Directory.GetSpecialist(c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "specialist not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load specialist", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"specialist": sp})
}

func (h *DirectoryHandler) ListHospitalsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hospitals": h.Directory.ListHospitals()})
}

func (h *DirectoryHandler) GetHospitalHandler(c *gin.Context) {
	hosp, err := h.Directory.GetHospital(c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "hospital not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load hospital", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"hospital": hosp})
}
