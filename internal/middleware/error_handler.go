package middleware

import (
	"net/http"

	apperrors "hypergo-properties/internal/errors"
	"hypergo-properties/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler catches errors and returns standardized responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		appErr := apperrors.MapError(c.Errors.Last().Err)

		fields := []zap.Field{
			zap.String("request_id", c.GetString(ContextRequestID)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
			zap.String("code", appErr.Code),
			zap.Error(appErr),
		}
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.GlobalLogger.Zap().Error("request failed", fields...)
		} else {
			logger.GlobalLogger.Zap().Info("request rejected", fields...)
		}

		if c.Writer.Written() {
			return
		}
		body := gin.H{
			"message": appErr.UserMessage,
			"code":    appErr.Code,
		}
		if len(appErr.Details) > 0 {
			body["details"] = appErr.Details
		}
		c.JSON(appErr.HTTPStatus, gin.H{"error": body})
	}
}
