package controllers

import (
	"net/http"

	"studio-backend/services"
	"studio-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Reviews *services.ReviewService
	Logs    *services.AdminLogService
}

func NewReviewController(reviews *services.ReviewService, logs *services.AdminLogService) *ReviewController {
	return &ReviewController{Reviews: reviews, Logs: logs}
}

type createReviewRequest struct {
	Author  string `json:"author" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

type updateReviewRequest struct {
	Status          *string `json:"status" binding:"omitempty,oneof=approved rejected"`
	ModifiedContent *string `json:"modifiedContent"`
}

// GET /api/reviews
func (rc *ReviewController) ListApproved(c *gin.Context) {
	reviews, err := rc.Reviews.ListApproved(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, "Failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// POST /api/reviews
func (rc *ReviewController) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Author and content are required")
		return
	}

	review, err := rc.Reviews.Create(c.Request.Context(), req.Author, req.Content)
	if err != nil {
		utils.RespondError(c, err, "Failed to submit review")
		return
	}
	c.JSON(http.StatusCreated, review)
}

// GET /api/reviews/pending
func (rc *ReviewController) ListPending(c *gin.Context) {
	reviews, err := rc.Reviews.ListPending(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, "Failed to fetch pending reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// PATCH /api/reviews/:id
func (rc *ReviewController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Status must be approved or rejected")
		return
	}
	if req.Status == nil && req.ModifiedContent == nil {
		utils.JSONError(c, http.StatusBadRequest, "Nothing to update")
		return
	}

	review, err := rc.Reviews.Update(c.Request.Context(), id, services.ReviewUpdate{
		Status:          req.Status,
		ModifiedContent: req.ModifiedContent,
	})
	if err != nil {
		utils.RespondError(c, err, "Failed to update review")
		return
	}
	if review == nil {
		utils.JSONError(c, http.StatusNotFound, "Review not found")
		return
	}

	recordAdminAction(c, rc.Logs, "review.update", gin.H{"reviewId": review.ID, "status": review.Status})
	c.JSON(http.StatusOK, review)
}
