package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-infinity/middleware"
	"hotel-infinity/models"
	"hotel-infinity/store"
	"hotel-infinity/utils"
)

type BookingController struct {
	store *store.Store
}

func NewBookingController(s *store.Store) *BookingController {
	return &BookingController{store: s}
}

// CreateBooking (POST /api/bookings) is the public booking flow: pricing,
// simulated payment authorization, then the booking plus correlated payment.
// A declined payment still answers 402 with the pending booking attached so
// the caller can retry or contact the desk.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req store.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	booking, err := bc.store.CreateBooking(c.Request.Context(), req)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	if booking.PaymentStatus == models.PaymentStatusFailed {
		c.JSON(http.StatusPaymentRequired, gin.H{
			"success": false,
			"error":   "payment failed",
			"booking": booking,
		})
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.store.Bookings(middleware.SessionToken(c))
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) GetBookingByID(c *gin.Context) {
	booking, err := bc.store.BookingByID(middleware.SessionToken(c), c.Param("id"))
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (bc *BookingController) UpdateBooking(c *gin.Context) {
	var patch store.BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	booking, err := bc.store.UpdateBooking(c.Request.Context(), middleware.SessionToken(c), c.Param("id"), patch)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	if err := bc.store.DeleteBooking(c.Request.Context(), middleware.SessionToken(c), c.Param("id")); err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "booking deleted"})
}
