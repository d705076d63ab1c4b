package middleware

import (
	"net/http"
	"strings"

	"qost_backend/internal/auth"
	"qost_backend/internal/logger"
	"qost_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer access token and stores the caller's
// identity in the gin context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.ParseAccess(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", claims.Subject)
		c.Set("username", claims.Username)
		c.Set("userStatus", claims.UserState)

		ctx := logger.WithUserID(c.Request.Context(), claims.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireStatus restricts a route to the given account statuses.
func RequireStatus(statuses ...models.UserStatus) gin.HandlerFunc {
	allowed := make(map[models.UserStatus]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}

	return func(c *gin.Context) {
		statusVal, exists := c.Get("userStatus")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no status"})
			return
		}

		statusStr, ok := statusVal.(string)
		if !ok || !allowed[models.UserStatus(statusStr)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user ID from the context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}
