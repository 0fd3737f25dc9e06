package repository

import (
	"context"
	"testing"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"github.com/glebarez/sqlite"
)

// newTestDB opens a fresh in-memory database. The pool is pinned to a single
// connection because each sqlite connection gets its own :memory: store.
func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	cfg := config.DatabaseConfig{
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		QueryTimeout:    5 * time.Second,
	}

	db, err := database.Open(sqlite.Open(":memory:"), cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return db
}

func createDirector(t *testing.T, db *database.Database, name string) *models.Director {
	t.Helper()

	director := &models.Director{Name: name}
	if err := NewDirectorRepository(db).Create(context.Background(), director); err != nil {
		t.Fatalf("failed to create director %q: %v", name, err)
	}
	return director
}

func createGenre(t *testing.T, db *database.Database, name string) *models.Genre {
	t.Helper()

	genre, err := NewGenreRepository(db).FindOrCreateByName(context.Background(), name)
	if err != nil {
		t.Fatalf("failed to create genre %q: %v", name, err)
	}
	return genre
}
