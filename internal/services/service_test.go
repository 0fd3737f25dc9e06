package services

import (
	"context"
	"io"
	"testing"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
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

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newCatalogService(t *testing.T) (CatalogService, *database.Database) {
	t.Helper()

	db := newTestDB(t)
	svc := NewCatalogService(
		repository.NewMovieRepository(db),
		repository.NewShowRepository(db),
		repository.NewDirectorRepository(db),
		repository.NewGenreRepository(db),
		repository.NewReviewRepository(db),
		testLogger(),
	)
	return svc, db
}

func newAuthService(t *testing.T) AuthService {
	t.Helper()

	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), testLogger())
}

func mustCreateDirector(t *testing.T, db *database.Database, name string) uint {
	t.Helper()

	director, err := repository.NewDirectorRepository(db).FindOrCreateByName(context.Background(), name)
	if err != nil {
		t.Fatalf("failed to create director %q: %v", name, err)
	}
	return director.ID
}

func mustCreateGenre(t *testing.T, db *database.Database, name string) uint {
	t.Helper()

	genre, err := repository.NewGenreRepository(db).FindOrCreateByName(context.Background(), name)
	if err != nil {
		t.Fatalf("failed to create genre %q: %v", name, err)
	}
	return genre.ID
}
