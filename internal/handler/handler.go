// Package handler implements the HTTP handlers for accounts, the game
// catalog and favorites. Handlers depend on the service interfaces below and
// translate service errors into JSON error responses.
package handler

import (
	"context"

	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/service"
)

// UserService is the account contract used by the auth handlers.
type UserService interface {
	Register(ctx context.Context, r service.Registration) (*models.User, error)
	Authenticate(ctx context.Context, c service.Credentials) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// CatalogService is the listing contract used by the game handlers.
type CatalogService interface {
	List(ctx context.Context, userID uint, q catalog.Query) ([]models.GameView, int64, error)
	Get(ctx context.Context, userID, gameID uint) (*models.GameView, error)
	Sports(ctx context.Context) ([]string, error)
	Providers(ctx context.Context) ([]string, error)
}

// FavoriteService is the contract used by the favorite handlers.
type FavoriteService interface {
	Add(ctx context.Context, userID, gameID uint) (*models.Favorite, error)
	Remove(ctx context.Context, userID, gameID uint) error
	List(ctx context.Context, userID uint) ([]models.FavoriteGame, error)
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	GenerateToken(userID uint, email string) (string, error)
}

// Handler groups the HTTP handlers and their dependencies.
type Handler struct {
	users     UserService
	games     CatalogService
	favorites FavoriteService
	tokens    TokenIssuer

	// storeConfigured is false when the server runs without a store; /auth/me
	// then answers from the token alone.
	storeConfigured bool
}

// New returns a Handler.
func New(users UserService, games CatalogService, favorites FavoriteService, tokens TokenIssuer, storeConfigured bool) *Handler {
	return &Handler{
		users:           users,
		games:           games,
		favorites:       favorites,
		tokens:          tokens,
		storeConfigured: storeConfigured,
	}
}
