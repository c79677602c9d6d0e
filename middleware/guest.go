package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const GuestTokenHeader = "X-Guest-Token"

// GuestMiddleware requires a guest session token on unauthenticated guest
// routes. Tokens are opaque identifiers issued by the guest endpoint; the
// store itself is the only authority on whether one holds data.
func GuestMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(GuestTokenHeader)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing guest token"})
			c.Abort()
			return
		}

		if _, err := uuid.Parse(token); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid guest token"})
			c.Abort()
			return
		}

		c.Set("guest_token", token)
		c.Next()
	}
}
