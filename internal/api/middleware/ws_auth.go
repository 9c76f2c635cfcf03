package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// WSAuth authenticates WebSocket upgrade requests. Browsers cannot set
// headers on a WebSocket handshake, so the token travels as a query
// parameter on the connection URI.
func (am *AuthMiddleware) WSAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token is required"})
			return
		}

		tokenString = strings.Replace(tokenString, "Bearer ", "", 1)
		userID, email, err := parseIdentity(tokenString, am.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("user_id", userID)
		c.Set("email", email)
		c.Next()
	}
}
