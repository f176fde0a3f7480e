package middleware

import (
	"strings"

	apperrors "hypergo-properties/internal/errors"
	"hypergo-properties/pkg/auth"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID = "user_id"
	ContextName   = "name"
	ContextEmail  = "email"
)

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Error(apperrors.Unauthorized(apperrors.MsgAuthRequired, nil))
			c.Abort()
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.Error(apperrors.Unauthorized("Invalid authorization header format.", nil))
			c.Abort()
			return
		}

		claims, err := auth.ValidateJWT(strings.TrimSpace(token), secret)
		if err != nil {
			c.Error(apperrors.Unauthorized("Invalid or expired token.", err))
			c.Abort()
			return
		}
		if _, err := primitive.ObjectIDFromHex(claims.UserID); err != nil {
			c.Error(apperrors.Unauthorized("Invalid or expired token.", err))
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextName, claims.Name)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller set by AuthMiddleware.
func CurrentUserID(c *gin.Context) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(c.GetString(ContextUserID))
	if err != nil {
		return primitive.NilObjectID, apperrors.Unauthorized(apperrors.MsgAuthRequired, err)
	}
	return oid, nil
}
