package models

import (
	"errors"
	"fmt"
	"time"
)

// GameType discriminates the two catalog variants.
type GameType string

const (
	GameTypeSports GameType = "sports"
	GameTypeCasino GameType = "casino"
)

// Valid reports whether t is a known variant.
func (t GameType) Valid() bool {
	return t == GameTypeSports || t == GameTypeCasino
}

// Game is a catalog entry. The row is stored flat; which of the nullable
// columns are populated depends on GameType. Use Sports or Casino to read the
// variant-specific attributes.
type Game struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	GameName  string     `gorm:"size:255;not null" json:"game_name"`
	Sport     *string    `gorm:"size:100;index" json:"sport"`
	Provider  *string    `gorm:"size:100;index" json:"provider"`
	League    *string    `gorm:"size:255" json:"league"`
	Category  *string    `gorm:"size:100" json:"category"`
	TeamA     *string    `gorm:"size:255" json:"team_a"`
	TeamB     *string    `gorm:"size:255" json:"team_b"`
	StartTime *time.Time `gorm:"type:timestamp" json:"start_time"`
	GameType  GameType   `gorm:"size:50;not null;check:game_type IN ('sports','casino')" json:"game_type"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName returns the database table name for Game.
func (Game) TableName() string { return "games" }

// SportsMatch holds the attributes of the sports variant.
type SportsMatch struct {
	Sport     string
	League    string
	TeamA     string
	TeamB     string
	StartTime time.Time
}

// CasinoGame holds the attributes of the casino variant.
type CasinoGame struct {
	Provider string
	Category string
}

// NewSportsGame builds a sports-variant Game.
func NewSportsGame(name string, m SportsMatch) Game {
	start := m.StartTime
	return Game{
		GameName:  name,
		GameType:  GameTypeSports,
		Sport:     &m.Sport,
		League:    &m.League,
		TeamA:     &m.TeamA,
		TeamB:     &m.TeamB,
		StartTime: &start,
	}
}

// NewCasinoGame builds a casino-variant Game.
func NewCasinoGame(name string, c CasinoGame) Game {
	return Game{
		GameName: name,
		GameType: GameTypeCasino,
		Provider: &c.Provider,
		Category: &c.Category,
	}
}

// Sports returns the sports attributes when g is a sports match.
func (g Game) Sports() (SportsMatch, bool) {
	if g.GameType != GameTypeSports {
		return SportsMatch{}, false
	}
	m := SportsMatch{
		Sport:  deref(g.Sport),
		League: deref(g.League),
		TeamA:  deref(g.TeamA),
		TeamB:  deref(g.TeamB),
	}
	if g.StartTime != nil {
		m.StartTime = *g.StartTime
	}
	return m, true
}

// Casino returns the casino attributes when g is a casino game.
func (g Game) Casino() (CasinoGame, bool) {
	if g.GameType != GameTypeCasino {
		return CasinoGame{}, false
	}
	return CasinoGame{Provider: deref(g.Provider), Category: deref(g.Category)}, true
}

// Validate checks that the populated columns agree with the discriminant.
func (g Game) Validate() error {
	if g.GameName == "" {
		return errors.New("game_name is required")
	}
	if !g.GameType.Valid() {
		return fmt.Errorf("unknown game_type %q", g.GameType)
	}
	switch g.GameType {
	case GameTypeSports:
		if g.Provider != nil || g.Category != nil {
			return errors.New("sports game must not carry casino attributes")
		}
		if g.Sport == nil || *g.Sport == "" {
			return errors.New("sports game requires a sport")
		}
	case GameTypeCasino:
		if g.Sport != nil || g.League != nil || g.TeamA != nil || g.TeamB != nil || g.StartTime != nil {
			return errors.New("casino game must not carry sports attributes")
		}
		if g.Provider == nil || *g.Provider == "" {
			return errors.New("casino game requires a provider")
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
