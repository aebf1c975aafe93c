package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/models"
)

// gamesForUser is the FROM/JOIN shared by the count and page statements:
// every game, left-joined with the caller's favorite row if any.
func gamesForUser(ctx context.Context, db *gorm.DB, userID uint, q catalog.Query) *gorm.DB {
	tx := db.WithContext(ctx).
		Table(catalog.GamesTable).
		Joins("LEFT JOIN favorites ON favorites.game_id = games.id AND favorites.user_id = ?", userID)
	if exprs := q.Predicate(); len(exprs) > 0 {
		tx = tx.Clauses(clause.Where{Exprs: exprs})
	}
	return tx
}

// CountGames returns how many games match q for the caller.
func CountGames(ctx context.Context, db *gorm.DB, userID uint, q catalog.Query) (int64, error) {
	var total int64
	if err := gamesForUser(ctx, db, userID, q).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return total, nil
}

// ListGamesPage returns the page of games described by q, newest first, with
// the caller's favorite flag.
func ListGamesPage(ctx context.Context, db *gorm.DB, userID uint, q catalog.Query) ([]models.GameView, error) {
	out := make([]models.GameView, 0, q.Limit)
	err := gamesForUser(ctx, db, userID, q).
		Select("games.*, (favorites.id IS NOT NULL) AS is_favorite").
		Order("games.created_at DESC").
		Order("games.id DESC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return out, nil
}

// GetGame returns one game with the caller's favorite flag.
func GetGame(ctx context.Context, db *gorm.DB, userID, gameID uint) (*models.GameView, error) {
	var v models.GameView
	err := gamesForUser(ctx, db, userID, catalog.Query{}).
		Select("games.*, (favorites.id IS NOT NULL) AS is_favorite").
		Where("games.id = ?", gameID).
		Take(&v).Error
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}
	return &v, nil
}

// GameExists reports whether a game with the given id exists.
func GameExists(ctx context.Context, db *gorm.DB, gameID uint) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&models.Game{}).Where("id = ?", gameID).Count(&n).Error; err != nil {
		return false, fmt.Errorf("game exists: %w", err)
	}
	return n > 0, nil
}

// DistinctSports returns every non-null sport, sorted.
func DistinctSports(ctx context.Context, db *gorm.DB) ([]string, error) {
	return distinctColumn(ctx, db, "sport")
}

// DistinctProviders returns every non-null provider, sorted.
func DistinctProviders(ctx context.Context, db *gorm.DB) ([]string, error) {
	return distinctColumn(ctx, db, "provider")
}

func distinctColumn(ctx context.Context, db *gorm.DB, column string) ([]string, error) {
	out := []string{}
	err := db.WithContext(ctx).
		Model(&models.Game{}).
		Distinct(column).
		Where(clause.Expr{SQL: "? IS NOT NULL", Vars: []any{clause.Column{Name: column}}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}}).
		Pluck(column, &out).Error
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	return out, nil
}
