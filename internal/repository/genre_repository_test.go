package repository

import (
	"context"
	"testing"
)

func TestGenreFindOrCreateByNameIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepository(db)
	ctx := context.Background()

	first, err := repo.FindOrCreateByName(ctx, "Sci-Fi")
	if err != nil {
		t.Fatalf("first resolution failed: %v", err)
	}

	second, err := repo.FindOrCreateByName(ctx, "sci-fi")
	if err != nil {
		t.Fatalf("second resolution failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected lowercase lookup to hit the same genre, got ids %d and %d", first.ID, second.ID)
	}

	genres, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(genres) != 1 {
		t.Errorf("expected 1 genre, got %d", len(genres))
	}
}

func TestGenreFindByIDsDropsUnknownIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepository(db)
	ctx := context.Background()

	scifi := createGenre(t, db, "Sci-Fi")
	thriller := createGenre(t, db, "Thriller")

	genres, err := repo.FindByIDs(ctx, []uint{scifi.ID, 999, thriller.ID})
	if err != nil {
		t.Fatalf("FindByIDs failed: %v", err)
	}
	if len(genres) != 2 {
		t.Fatalf("expected unknown id to be dropped, got %d genres", len(genres))
	}
}

func TestGenreFindByIDsEmptyInput(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepository(db)

	genres, err := repo.FindByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("FindByIDs failed: %v", err)
	}
	if len(genres) != 0 {
		t.Errorf("expected no genres for empty input, got %d", len(genres))
	}
}
