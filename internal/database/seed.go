package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"gamecatalog/backend/internal/models"
)

// SeedResult reports how many rows Seed inserted per variant.
type SeedResult struct {
	Sports int
	Casino int
}

func kickoff(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedGames returns the catalog fixture: ten sports matches followed by ten
// casino games.
func SeedGames() []models.Game {
	sports := []struct {
		sport, league, teamA, teamB, start string
	}{
		{"Cricket", "IPL", "Mumbai Indians", "Chennai Super Kings", "2024-05-15T19:30:00"},
		{"Cricket", "IPL", "Royal Challengers Bangalore", "Kolkata Knight Riders", "2024-05-16T15:30:00"},
		{"Football", "EPL", "Manchester United", "Liverpool", "2024-05-17T16:00:00"},
		{"Football", "EPL", "Arsenal", "Chelsea", "2024-05-18T14:30:00"},
		{"Football", "La Liga", "Barcelona", "Real Madrid", "2024-05-19T20:00:00"},
		{"Tennis", "Wimbledon", "Novak Djokovic", "Rafael Nadal", "2024-05-20T13:00:00"},
		{"Tennis", "US Open", "Roger Federer", "Andy Murray", "2024-05-21T15:30:00"},
		{"Cricket", "IPL", "Delhi Capitals", "Sunrisers Hyderabad", "2024-05-22T19:30:00"},
		{"Football", "Champions League", "Paris Saint-Germain", "Bayern Munich", "2024-05-23T20:00:00"},
		{"Tennis", "French Open", "Serena Williams", "Maria Sharapova", "2024-05-24T12:00:00"},
	}
	casino := []struct {
		name, provider, category string
	}{
		{"Book of Dead", "Play'n GO", "Slots"},
		{"Gates of Olympus", "Pragmatic Play", "Slots"},
		{"Sweet Bonanza", "Pragmatic Play", "Slots"},
		{"Lightning Roulette", "Evolution", "Live Casino"},
		{"Blackjack Live", "Evolution", "Live Casino"},
		{"Monopoly Live", "Evolution", "Live Casino"},
		{"European Roulette", "Evolution", "Table Games"},
		{"Starburst", "NetEnt", "Slots"},
		{"Mega Fortune", "NetEnt", "Slots"},
		{"Big Bass Bonanza", "Pragmatic Play", "Slots"},
	}

	games := make([]models.Game, 0, len(sports)+len(casino))
	for _, s := range sports {
		games = append(games, models.NewSportsGame(s.teamA+" vs "+s.teamB, models.SportsMatch{
			Sport:     s.sport,
			League:    s.league,
			TeamA:     s.teamA,
			TeamB:     s.teamB,
			StartTime: kickoff(s.start),
		}))
	}
	for _, c := range casino {
		games = append(games, models.NewCasinoGame(c.name, models.CasinoGame{
			Provider: c.provider,
			Category: c.category,
		}))
	}
	return games
}

// Seed replaces the catalog with SeedGames. Existing favorites are removed
// first since they reference the games being replaced. Users are kept.
func Seed(ctx context.Context, db *gorm.DB) (SeedResult, error) {
	games := SeedGames()
	var res SeedResult

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Favorite{}).Error; err != nil {
			return fmt.Errorf("clear favorites: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Game{}).Error; err != nil {
			return fmt.Errorf("clear games: %w", err)
		}
		for i := range games {
			if err := games[i].Validate(); err != nil {
				return fmt.Errorf("seed %q: %w", games[i].GameName, err)
			}
			// Inserted one at a time so ids follow fixture order.
			if err := tx.Create(&games[i]).Error; err != nil {
				return fmt.Errorf("insert %q: %w", games[i].GameName, err)
			}
			switch games[i].GameType {
			case models.GameTypeSports:
				res.Sports++
			case models.GameTypeCasino:
				res.Casino++
			}
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	log.Info().Int("sports", res.Sports).Int("casino", res.Casino).Msg("seed data inserted")
	return res, nil
}
