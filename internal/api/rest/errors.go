package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/marcosboni7/backsleeping/internal/api/shared/errors"
	"github.com/marcosboni7/backsleeping/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondUnauthorized responds with an unauthorized error
func respondUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError(message))
}

// respondInternalError responds with an internal server error and logs the cause
func respondInternalError(c *gin.Context, err error, message string, details ...string) {
	logger.Error(err)
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message, details...))
}

// statusForCode maps an API error code to its HTTP status
func statusForCode(code apierrors.ErrorCode) int {
	switch code {
	case apierrors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case apierrors.ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case apierrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apierrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeDuplicateCredential, apierrors.ErrCodeConflict, apierrors.ErrCodeAlreadyOwned:
		return http.StatusConflict
	case apierrors.ErrCodeInsufficientBalance:
		return http.StatusPaymentRequired
	case apierrors.ErrCodeUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	case apierrors.ErrCodeUploadFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps an executor error to its HTTP response. Server-side
// errors are logged before the generic body goes out.
func respondError(c *gin.Context, err error, fallbackMessage string) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		status := statusForCode(apiErr.Code)
		if status >= http.StatusInternalServerError {
			logger.Error(err)
			// Upstream provider failures stay distinguishable; only
			// internal errors get the generic body
			if apiErr.Code == apierrors.ErrCodeUploadFailed {
				c.JSON(status, apiErr)
				return
			}
			c.JSON(status, apierrors.NewInternalError(fallbackMessage))
			return
		}
		c.JSON(status, apiErr)
		return
	}

	respondInternalError(c, err, fallbackMessage)
}
