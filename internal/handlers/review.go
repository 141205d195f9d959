// internal/handlers/review.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rgsaudi/musicstore-backend/internal/services"
	"github.com/rgsaudi/musicstore-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// POST /addreview
func (h *ReviewHandler) AddReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	if _, err := h.reviewService.AddReview(userID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, http.StatusCreated, "Thank you for the feedback")
}

// GET /getreviews
func (h *ReviewHandler) GetProductsWithReviews(c *gin.Context) {
	products, err := h.reviewService.GetProductsWithReviews()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}
