// internal/handlers/common.go
package handlers

import (
	"errors"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rgsaudi/musicstore-backend/internal/services"
	"github.com/rgsaudi/musicstore-backend/internal/utils"
)

// handleServiceError converts typed service errors into the API's status
// mapping: 404 missing entity, 400 stock/floor/argument failures, 409
// conflicts, 401 bad credentials, 500 otherwise.
func handleServiceError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	var insufficientStock *services.InsufficientStockError
	var duplicateReview *services.DuplicateReviewError
	var duplicateCart *services.DuplicateCartEntryError
	var emailInUse *services.EmailInUseError
	var belowMinimum *services.BelowMinimumError
	var invalidArg *services.InvalidArgumentError

	switch {
	case errors.As(err, &notFound):
		utils.NotFoundResponse(c, capitalize(notFound.Resource)+" Not Found")
	case errors.As(err, &insufficientStock):
		utils.BadRequestResponse(c, "Not enough stock for this product")
	case errors.As(err, &duplicateReview):
		utils.ConflictResponse(c, "You have already reviewed this product for this order")
	case errors.As(err, &duplicateCart):
		utils.ConflictResponse(c, duplicateCart.ProductName+" - Already Added to Cart")
	case errors.As(err, &emailInUse):
		utils.ConflictResponse(c, "Email is already registered")
	case errors.As(err, &belowMinimum):
		utils.BadRequestResponse(c, "Quantity cannot be less than 1")
	case errors.As(err, &invalidArg):
		utils.BadRequestResponse(c, capitalize(invalidArg.Message))
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, "Invalid credentials!")
	default:
		logrus.WithError(err).Error("Unhandled service error")
		utils.InternalErrorResponse(c, "")
	}
}

// currentUserID reads the authenticated user's id set by the auth middleware.
// It responds 401 itself when the id is absent or malformed.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	return userID, true
}

func parsePathID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + param})
		return uuid.Nil, false
	}
	return id, true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
