package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"lecture-whisper/internal/api/errors"
)

// ValidateForm binds and validates a multipart/form request into req.
func ValidateForm(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		return toValidationError(err)
	}
	return nil
}

// ValidateQuery binds and validates query parameters into req.
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return toValidationError(err)
	}
	return nil
}

func toValidationError(err error) *errors.APIError {
	validationErrors := make(map[string]string)

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrs {
			field := strings.ToLower(fieldError.Field())

			switch fieldError.Tag() {
			case "required":
				validationErrors[field] = "is required"
			case "min":
				validationErrors[field] = "is too short"
			case "max":
				validationErrors[field] = "is too long"
			default:
				validationErrors[field] = "is invalid"
			}
		}
	} else {
		validationErrors["request"] = "invalid request format"
	}

	return errors.NewValidationError("Validation failed", validationErrors)
}
