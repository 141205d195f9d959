// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func SuccessResponse(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data gin.H) {
	c.JSON(http.StatusCreated, data)
}

func MessageResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func BadRequestResponse(c *gin.Context, message string) {
	MessageResponse(c, http.StatusBadRequest, message)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Login to Continue"
	}
	MessageResponse(c, http.StatusUnauthorized, message)
}

func ForbiddenResponse(c *gin.Context, message string) {
	MessageResponse(c, http.StatusForbidden, message)
}

func NotFoundResponse(c *gin.Context, message string) {
	MessageResponse(c, http.StatusNotFound, message)
}

func ConflictResponse(c *gin.Context, message string) {
	MessageResponse(c, http.StatusConflict, message)
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	MessageResponse(c, http.StatusInternalServerError, message)
}

// ValidationErrorResponse reports per-field failures as 422 {errors: {field: [messages]}}.
func ValidationErrorResponse(c *gin.Context, fieldErrors map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors})
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, exists := c.Get("user_id"); exists {
		if userIDStr, ok := userID.(string); ok {
			return userIDStr, true
		}
	}
	return "", false
}

func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	if role, exists := c.Get("role"); exists {
		if roleStr, ok := role.(string); ok {
			return roleStr, true
		}
	}
	return "", false
}
