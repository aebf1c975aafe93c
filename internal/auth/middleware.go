// Package auth holds the Gin middleware that gates protected routes on a
// valid session token and on the availability of the store.
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamecatalog/backend/pkg/jwt"
)

// Context keys set by the middleware in this package.
const (
	UserIDKey    = "userID"
	UserEmailKey = "userEmail"
)

// TokenVerifier validates a raw session token.
type TokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

// AuthMiddleware requires a valid bearer token. A missing token is answered
// with 401; a token that fails verification (bad signature, malformed,
// expired) with 403.
func AuthMiddleware(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := v.Verify(jwt.BearerToken(c.GetHeader("Authorization")))
		if err != nil {
			if errors.Is(err, jwt.ErrMissingToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware inspects for a token and sets the identity if it is
// present and valid, but never rejects the request. It lets edge middleware
// such as the rate limiter key on the user before the route's own gate runs.
func OptionalAuthMiddleware(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := jwt.BearerToken(c.GetHeader("Authorization")); token != "" {
			if claims, err := v.Verify(token); err == nil {
				setIdentity(c, claims)
			}
		}
		c.Next()
	}
}

func setIdentity(c *gin.Context, claims *jwt.Claims) {
	c.Set(UserIDKey, claims.UserID)
	c.Set(UserEmailKey, claims.Email)
}

// UserID returns the authenticated user's id.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

// UserEmail returns the email carried by the authenticated user's token.
func UserEmail(c *gin.Context) string {
	return c.GetString(UserEmailKey)
}
