// Package dbtest provides migrated SQLite databases for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/database"
)

// Open returns an empty, migrated database private to t.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	cfg := config.Config{
		DBDriver:       "sqlite",
		SQLitePath:     filepath.Join(t.TempDir(), "test.db"),
		DBMaxOpenConns: 1,
	}
	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// Seeded returns a migrated database holding the standard catalog fixture.
func Seeded(t testing.TB) *gorm.DB {
	t.Helper()
	db := Open(t)
	if _, err := database.Seed(context.Background(), db); err != nil {
		t.Fatalf("seed test db: %v", err)
	}
	return db
}
