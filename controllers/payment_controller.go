package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-infinity/middleware"
	"hotel-infinity/store"
	"hotel-infinity/utils"
)

type PaymentController struct {
	store *store.Store
}

func NewPaymentController(s *store.Store) *PaymentController {
	return &PaymentController{store: s}
}

func (pc *PaymentController) GetPayments(c *gin.Context) {
	payments, err := pc.store.Payments(middleware.SessionToken(c))
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var input store.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	pay, err := pc.store.AddPayment(c.Request.Context(), middleware.SessionToken(c), input)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusCreated, pay)
}

func (pc *PaymentController) UpdatePayment(c *gin.Context) {
	var patch store.PaymentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	pay, err := pc.store.UpdatePayment(c.Request.Context(), middleware.SessionToken(c), c.Param("id"), patch)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, pay)
}
