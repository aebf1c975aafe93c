package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gamecatalog/backend/internal/models"
)

// CreateFavorite inserts a (user, game) favorite. A second insert for the
// same pair fails on the unique index.
func CreateFavorite(ctx context.Context, db *gorm.DB, userID, gameID uint) (*models.Favorite, error) {
	f := &models.Favorite{UserID: userID, GameID: gameID}
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(f).Error; err != nil {
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	return f, nil
}

// DeleteFavorite removes the (user, game) favorite and reports how many rows
// were deleted.
func DeleteFavorite(ctx context.Context, db *gorm.DB, userID, gameID uint) (int64, error) {
	res := db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete favorite: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// ListFavorites returns the user's favorited games, most recently favorited
// first.
func ListFavorites(ctx context.Context, db *gorm.DB, userID uint) ([]models.FavoriteGame, error) {
	out := []models.FavoriteGame{}
	err := db.WithContext(ctx).
		Table("favorites").
		Select("games.*, favorites.created_at AS favorited_at").
		Joins("JOIN games ON games.id = favorites.game_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Order("favorites.id DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	for i := range out {
		out[i].IsFavorite = true
	}
	return out, nil
}
