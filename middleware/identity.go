package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextUserIDKey is where the acting user's id lives in the gin
// context.
const ContextUserIDKey = "userID"

// IdentityMiddleware reads the acting user from the X-User-ID header.
// The portal has no real authentication; the client supplies its
// session identity and every per-user operation scopes to it.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing X-User-ID header",
			})
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// UserID returns the acting user id set by IdentityMiddleware.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
