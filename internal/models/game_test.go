package models

import (
	"testing"
	"time"
)

func TestNewSportsGame_Variant(t *testing.T) {
	start := time.Date(2024, 5, 15, 19, 30, 0, 0, time.UTC)
	g := NewSportsGame("Mumbai Indians vs Chennai Super Kings", SportsMatch{
		Sport: "Cricket", League: "IPL", TeamA: "Mumbai Indians", TeamB: "Chennai Super Kings", StartTime: start,
	})
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	m, ok := g.Sports()
	if !ok {
		t.Fatalf("expected sports variant")
	}
	if m.Sport != "Cricket" || m.TeamB != "Chennai Super Kings" || !m.StartTime.Equal(start) {
		t.Fatalf("unexpected sports attributes: %+v", m)
	}
	if _, ok := g.Casino(); ok {
		t.Fatalf("sports game must not expose casino attributes")
	}
}

func TestNewCasinoGame_Variant(t *testing.T) {
	g := NewCasinoGame("Starburst", CasinoGame{Provider: "NetEnt", Category: "Slots"})
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	c, ok := g.Casino()
	if !ok || c.Provider != "NetEnt" || c.Category != "Slots" {
		t.Fatalf("unexpected casino attributes: %+v ok=%v", c, ok)
	}
	if _, ok := g.Sports(); ok {
		t.Fatalf("casino game must not expose sports attributes")
	}
}

func TestGameValidate_Rejects(t *testing.T) {
	provider := "NetEnt"
	sport := "Tennis"

	mixed := NewSportsGame("x", SportsMatch{Sport: "Tennis"})
	mixed.Provider = &provider

	casinoWithSport := NewCasinoGame("y", CasinoGame{Provider: "Evolution"})
	casinoWithSport.Sport = &sport

	cases := []struct {
		name string
		g    Game
	}{
		{"empty name", Game{GameType: GameTypeCasino, Provider: &provider}},
		{"unknown type", Game{GameName: "z", GameType: "lottery"}},
		{"sports with provider", mixed},
		{"casino with sport", casinoWithSport},
		{"sports without sport", Game{GameName: "a", GameType: GameTypeSports}},
		{"casino without provider", Game{GameName: "b", GameType: GameTypeCasino}},
	}
	for _, tc := range cases {
		if err := tc.g.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestGameType_Valid(t *testing.T) {
	if !GameTypeSports.Valid() || !GameTypeCasino.Valid() {
		t.Fatalf("known types must be valid")
	}
	if GameType("poker").Valid() {
		t.Fatalf("unknown type must be invalid")
	}
}
