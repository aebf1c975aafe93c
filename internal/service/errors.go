// Package service holds the business rules for accounts, the game catalog
// and favorites. Errors returned here are sentinels (or *ValidationError) so
// the HTTP layer can map them to status codes without inspecting driver
// errors.
package service

import "errors"

var (
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound indicates the user row does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrGameNotFound indicates the game does not exist.
	ErrGameNotFound = errors.New("game not found")

	// ErrFavoriteNotFound is returned when removing a favorite that does not exist.
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrAlreadyFavorited is returned when adding a favorite that already exists.
	ErrAlreadyFavorited = errors.New("game already favorited")

	// ErrStoreUnavailable wraps timeouts and connectivity failures of the store.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError reports the first input rule that failed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }
