package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"lecture-whisper/internal/api/errors"
)

// ErrorHandler converts panics into structured APIError responses.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString(RequestIDKey)

		var apiErr *errors.APIError

		switch err := recovered.(type) {
		case *errors.APIError:
			apiErr = err
			apiErr.RequestID = requestID
		case error:
			logger.Error("Internal server error",
				"error", err.Error(),
				"request_id", requestID,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)
			apiErr = errors.NewInternalError("Internal server error")
			apiErr.RequestID = requestID
		default:
			logger.Error("Unknown panic occurred",
				"recovered", recovered,
				"request_id", requestID,
			)
			apiErr = errors.NewInternalError("Internal server error")
			apiErr.RequestID = requestID
		}

		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError is a helper for handlers to return errors through the
// APIError mapping.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	if apiErr, ok := err.(*errors.APIError); ok {
		apiErr.RequestID = c.GetString(RequestIDKey)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
		return
	}

	// Not an APIError: let the recovery middleware classify it.
	panic(err)
}
