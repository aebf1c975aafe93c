package models

import "time"

// Favorite marks a game as bookmarked by a user.
// The (UserID, GameID) pair is unique; the index is the final arbiter when two
// inserts for the same pair race.
type Favorite struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:ux_favorites_user_game,priority:1;index"`
	GameID    uint      `gorm:"not null;uniqueIndex:ux_favorites_user_game,priority:2;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Game Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// TableName returns the database table name for Favorite.
func (Favorite) TableName() string { return "favorites" }
