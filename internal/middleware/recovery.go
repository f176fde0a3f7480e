package middleware

import (
	"fmt"
	"io"

	"hypergo-properties/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a handler panic into a request error. It must run inside
// ErrorHandler so the client still receives the standard error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.GlobalLogger.Zap().Error("panic recovered",
			zap.String("request_id", c.GetString(ContextRequestID)),
			zap.Any("panic", recovered),
			zap.Stack("stack"),
		)
		c.Error(fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}
