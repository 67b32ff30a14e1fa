package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-infinity/middleware"
	"hotel-infinity/store"
	"hotel-infinity/utils"
)

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type AuthController struct {
	store *store.Store
}

func NewAuthController(s *store.Store) *AuthController {
	return &AuthController{store: s}
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	sess, err := ac.store.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": sess.Token, "user": sess.User})
}

// Register only succeeds for the fixed admin address; it is an alias for
// Login and creates no accounts.
func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	sess, err := ac.store.Register(c.Request.Context(), payload.Email, payload.Password, payload.Name)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": sess.Token, "user": sess.User})
}

func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.store.Logout(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the authenticated admin for the presented token.
func (ac *AuthController) Me(c *gin.Context) {
	sess, ok := ac.store.SessionByToken(middleware.BearerToken(c))
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": sess.User})
}
