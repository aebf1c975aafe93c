package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gamecatalog/backend/internal/middleware"
	"gamecatalog/backend/internal/service"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse is returned by operations without a resource body.
type MessageResponse struct {
	Message string `json:"message" example:"Game added to favorites"`
}

// fail aborts the request with a JSON error body.
func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}

// failWith maps a service error to its HTTP status and message. Unexpected
// errors are logged with the request context and reported as 500.
func failWith(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		fail(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, service.ErrDuplicateEmail):
		fail(c, http.StatusBadRequest, "User with this email already exists")
	case errors.Is(err, service.ErrAlreadyFavorited):
		fail(c, http.StatusBadRequest, "Game already in favorites")
	case errors.Is(err, service.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrUserNotFound):
		fail(c, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrGameNotFound):
		fail(c, http.StatusNotFound, "Game not found")
	case errors.Is(err, service.ErrFavoriteNotFound):
		fail(c, http.StatusNotFound, "Favorite not found")
	case errors.Is(err, service.ErrStoreUnavailable):
		middleware.LoggerFrom(c).Warn().Err(err).Msg("store unavailable")
		fail(c, http.StatusServiceUnavailable, "Service temporarily unavailable")
	default:
		_ = c.Error(err)
		middleware.LoggerFrom(c).Error().Err(err).Msg("request failed")
		fail(c, http.StatusInternalServerError, "Internal server error")
	}
}

// idParam parses a positive numeric path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
