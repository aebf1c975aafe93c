package models

import "time"

// GameView is a Game as seen by one user. IsFavorite is computed per request
// from the favorites table and never stored on the game row.
type GameView struct {
	Game
	IsFavorite bool `json:"is_favorite"`
}

// FavoriteGame is an entry of a user's favorites listing.
type FavoriteGame struct {
	Game
	IsFavorite  bool      `gorm:"-" json:"is_favorite"`
	FavoritedAt time.Time `json:"favorited_at"`
}
