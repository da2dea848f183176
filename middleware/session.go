package middleware

import (
	"net/http"
	"strings"

	"hausly/utils"

	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key holding the resolved cart session ID.
const SessionKey = "sessionID"

// SessionMiddleware resolves the anonymous cart session from the bearer
// token. There is no user identity behind it; the token only pins the
// caller to their persisted cart.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sessionID, err := utils.ExtractSessionID(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token"})
			return
		}

		c.Set(SessionKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session ID set by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
