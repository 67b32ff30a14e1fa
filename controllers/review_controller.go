package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-infinity/middleware"
	"hotel-infinity/store"
	"hotel-infinity/utils"
)

type ReviewController struct {
	store *store.Store
}

func NewReviewController(s *store.Store) *ReviewController {
	return &ReviewController{store: s}
}

// GetReviews (GET /api/reviews) returns approved reviews only.
func (vc *ReviewController) GetReviews(c *gin.Context) {
	c.JSON(http.StatusOK, vc.store.PublicReviews())
}

// GetAllReviews (GET /api/admin/reviews) includes unapproved entries.
func (vc *ReviewController) GetAllReviews(c *gin.Context) {
	reviews, err := vc.store.AdminReviews(middleware.SessionToken(c))
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview is public; the review waits for admin approval.
func (vc *ReviewController) CreateReview(c *gin.Context) {
	var input store.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	review, err := vc.store.AddReview(c.Request.Context(), input)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (vc *ReviewController) UpdateReview(c *gin.Context) {
	var patch store.ReviewPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	review, err := vc.store.UpdateReview(c.Request.Context(), middleware.SessionToken(c), c.Param("id"), patch)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (vc *ReviewController) ApproveReview(c *gin.Context) {
	review, err := vc.store.ApproveReview(c.Request.Context(), middleware.SessionToken(c), c.Param("id"))
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (vc *ReviewController) DeleteReview(c *gin.Context) {
	if err := vc.store.DeleteReview(c.Request.Context(), middleware.SessionToken(c), c.Param("id")); err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "review deleted"})
}
