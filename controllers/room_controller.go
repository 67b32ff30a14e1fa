package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-infinity/middleware"
	"hotel-infinity/store"
	"hotel-infinity/utils"
)

type RoomController struct {
	store *store.Store
}

func NewRoomController(s *store.Store) *RoomController {
	return &RoomController{store: s}
}

// GetRooms (GET /api/rooms) is public: the booking site lists every room.
func (rc *RoomController) GetRooms(c *gin.Context) {
	c.JSON(http.StatusOK, rc.store.Rooms())
}

func (rc *RoomController) GetRoomByID(c *gin.Context) {
	room, err := rc.store.RoomByID(c.Param("id"))
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var input store.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := rc.store.AddRoom(c.Request.Context(), middleware.SessionToken(c), input)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	var patch store.RoomPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := rc.store.UpdateRoom(c.Request.Context(), middleware.SessionToken(c), c.Param("id"), patch)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	if err := rc.store.DeleteRoom(c.Request.Context(), middleware.SessionToken(c), c.Param("id")); err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deleted"})
}
