package repository

import (
	"context"
	"testing"
)

func TestDirectorFindOrCreateByNameCreatesOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewDirectorRepository(db)
	ctx := context.Background()

	first, err := repo.FindOrCreateByName(ctx, "Christopher Nolan")
	if err != nil {
		t.Fatalf("first resolution failed: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected created director to have an id")
	}
	if first.Name != "Christopher Nolan" {
		t.Errorf("expected name to be stored as given, got %q", first.Name)
	}

	// Case and surrounding whitespace must resolve to the same identity.
	variants := []string{"Christopher Nolan", "christopher nolan", "  CHRISTOPHER NOLAN  "}
	for _, variant := range variants {
		resolved, err := repo.FindOrCreateByName(ctx, variant)
		if err != nil {
			t.Fatalf("resolution of %q failed: %v", variant, err)
		}
		if resolved.ID != first.ID {
			t.Errorf("resolution of %q returned id %d, want %d", variant, resolved.ID, first.ID)
		}
	}

	directors, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(directors) != 1 {
		t.Errorf("expected 1 director after repeated resolution, got %d", len(directors))
	}
}

func TestDirectorFindOrCreateByNameTrimsBeforeInsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewDirectorRepository(db)
	ctx := context.Background()

	director, err := repo.FindOrCreateByName(ctx, "  Denis Villeneuve ")
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if director.Name != "Denis Villeneuve" {
		t.Errorf("expected trimmed name, got %q", director.Name)
	}
}

func TestDirectorFindByIDAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := NewDirectorRepository(db)

	director, err := repo.FindByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if director != nil {
		t.Errorf("expected nil for unknown id, got %+v", director)
	}
}
