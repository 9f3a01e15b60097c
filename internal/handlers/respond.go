package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stayhub/hotel-booking-backend/internal/apperrors"
)

// respondError maps a domain failure to an HTTP response. Typed failures keep
// their stable message key so clients can localize; anything else is a 500.
func respondError(c *gin.Context, err error) {
	var notFound *apperrors.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": notFound.Error(),
			"code":    notFound.Key,
		})
		return
	}

	var denied *apperrors.PermissionDeniedError
	if errors.As(err, &denied) {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "permission_denied",
			"message": denied.Error(),
			"code":    denied.Key,
		})
		return
	}

	var invalid *apperrors.ValidationError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_failed",
			"message": invalid.Error(),
			"code":    invalid.Key,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "internal_error",
		"message": "An unexpected error occurred",
	})
}
