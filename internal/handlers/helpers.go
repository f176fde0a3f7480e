package handlers

import (
	apperrors "hypergo-properties/internal/errors"
	"hypergo-properties/internal/middleware"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body; a malformed body is a validation failure on "body".
func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		appErr := apperrors.Validation(apperrors.FieldError{Field: "body", Message: "must be a valid JSON object"})
		appErr.OriginalError = err
		c.Error(appErr)
		return false
	}
	return true
}

func setCacheHeader(c *gin.Context, cached bool) {
	if cached {
		c.Header(middleware.HeaderCache, "HIT")
	} else {
		c.Header(middleware.HeaderCache, "MISS")
	}
}
