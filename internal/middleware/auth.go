package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"carbontrack/internal/services"
)

// userIDKey is the context key the auth middleware stores the owner id under.
const userIDKey = "userID"

// AuthMiddleware validates the bearer session token against the sessions
// table and sets the owning user's id in the context. Expired tokens are
// removed by the session service during validation, so every request after
// expiry fails authentication.
func AuthMiddleware(sessions services.SessionServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		session, err := sessions.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			c.Abort()
			return
		}

		c.Set(userIDKey, session.UserID)
		c.Set("sessionToken", session.Token)
		c.Next()
	}
}
