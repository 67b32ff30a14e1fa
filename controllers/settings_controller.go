package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-infinity/middleware"
	"hotel-infinity/store"
	"hotel-infinity/utils"
)

type SettingsController struct {
	store *store.Store
}

func NewSettingsController(s *store.Store) *SettingsController {
	return &SettingsController{store: s}
}

// GetSettings (GET /api/settings) is public: the site footer and contact
// page render the hotel profile.
func (sc *SettingsController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hotel": sc.store.Settings()})
}

func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var patch store.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	settings, err := sc.store.UpdateSettings(c.Request.Context(), middleware.SessionToken(c), patch)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": settings})
}
