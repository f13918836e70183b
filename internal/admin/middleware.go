package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const tokenHeader = "X-Admin-Token"

// AuthMiddleware rejects requests that do not carry a live admin token.
func AuthMiddleware(sessions *SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.Validate(c.GetHeader(tokenHeader)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": "invalid admin token",
			})
			return
		}
		c.Next()
	}
}
