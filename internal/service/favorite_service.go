package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/repository"
)

// FavoriteService maintains the at-most-one favorite per (user, game) rule.
type FavoriteService struct {
	DB      *gorm.DB
	Timeout time.Duration
}

// NewFavoriteService returns a FavoriteService.
func NewFavoriteService(db *gorm.DB, timeout time.Duration) *FavoriteService {
	return &FavoriteService{DB: db, Timeout: timeout}
}

// Add marks the game as a favorite of the user. Adding the same pair twice
// fails with ErrAlreadyFavorited; the unique index decides concurrent adds.
func (s *FavoriteService) Add(ctx context.Context, userID, gameID uint) (*models.Favorite, error) {
	ctx, cancel := storeContext(ctx, s.Timeout)
	defer cancel()

	exists, err := repository.GameExists(ctx, s.DB, gameID)
	if err != nil {
		return nil, classify(err)
	}
	if !exists {
		return nil, ErrGameNotFound
	}

	f, err := repository.CreateFavorite(ctx, s.DB, userID, gameID)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrAlreadyFavorited
		}
		return nil, classify(err)
	}
	return f, nil
}

// Remove deletes the user's favorite for the game.
func (s *FavoriteService) Remove(ctx context.Context, userID, gameID uint) error {
	ctx, cancel := storeContext(ctx, s.Timeout)
	defer cancel()

	n, err := repository.DeleteFavorite(ctx, s.DB, userID, gameID)
	if err != nil {
		return classify(err)
	}
	if n == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// List returns the user's favorited games, most recent first.
func (s *FavoriteService) List(ctx context.Context, userID uint) ([]models.FavoriteGame, error) {
	ctx, cancel := storeContext(ctx, s.Timeout)
	defer cancel()

	out, err := repository.ListFavorites(ctx, s.DB, userID)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}
