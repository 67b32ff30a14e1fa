package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-infinity/middleware"
	"hotel-infinity/store"
	"hotel-infinity/utils"
)

type HallController struct {
	store *store.Store
}

func NewHallController(s *store.Store) *HallController {
	return &HallController{store: s}
}

func (hc *HallController) GetHalls(c *gin.Context) {
	c.JSON(http.StatusOK, hc.store.Halls())
}

func (hc *HallController) GetHallByID(c *gin.Context) {
	hall, err := hc.store.HallByID(c.Param("id"))
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, hall)
}

func (hc *HallController) CreateHall(c *gin.Context) {
	var input store.HallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	hall, err := hc.store.AddHall(c.Request.Context(), middleware.SessionToken(c), input)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusCreated, hall)
}

func (hc *HallController) UpdateHall(c *gin.Context) {
	var patch store.HallPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	hall, err := hc.store.UpdateHall(c.Request.Context(), middleware.SessionToken(c), c.Param("id"), patch)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, hall)
}

func (hc *HallController) DeleteHall(c *gin.Context) {
	if err := hc.store.DeleteHall(c.Request.Context(), middleware.SessionToken(c), c.Param("id")); err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "hall deleted"})
}
