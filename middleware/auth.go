package middleware

import (
	"net/http"
	"strings"

	"github.com/fintrack-dev/fintrack-api/utils"

	"github.com/gin-gonic/gin"
)

const (
	contextUserID = "user_id"
	contextEmail  = "email"
)

// AuthMiddleware validates the bearer token and stores the caller's identity
// in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		// WebSocket clients can't set headers, so allow ?token= as well.
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			c.Abort()
			return
		}

		claims, err := utils.ParseAccessToken(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(contextUserID, claims.Subject)
		c.Set(contextEmail, claims.Email)
		c.Next()
	}
}

// GetUserID returns the authenticated user's id, or "" outside the protected
// group.
func GetUserID(c *gin.Context) string {
	return c.GetString(contextUserID)
}

// GetUserEmail returns the authenticated user's email.
func GetUserEmail(c *gin.Context) string {
	return c.GetString(contextEmail)
}
