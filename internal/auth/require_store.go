package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StoreNotConfiguredMessage is returned by RequireStore when no store is set up.
const StoreNotConfiguredMessage = "Database not configured. Set DATABASE_URL in .env and restart the server."

// RequireStore answers 503 on every request when available is false.
func RequireStore(available bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !available {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": StoreNotConfiguredMessage})
			return
		}
		c.Next()
	}
}
