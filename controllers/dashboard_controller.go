package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-infinity/middleware"
	"hotel-infinity/store"
	"hotel-infinity/utils"
)

type DashboardController struct {
	store *store.Store
}

func NewDashboardController(s *store.Store) *DashboardController {
	return &DashboardController{store: s}
}

// GetStats (GET /api/admin/dashboard) computes the aggregates on demand.
func (dc *DashboardController) GetStats(c *gin.Context) {
	stats, err := dc.store.Stats(middleware.SessionToken(c))
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
