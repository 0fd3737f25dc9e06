package services

import (
	"context"
	"errors"
	"testing"
)

func TestCreateMovieUnknownDirectorFails(t *testing.T) {
	svc, _ := newCatalogService(t)
	ctx := context.Background()

	_, err := svc.CreateMovie(ctx, MovieInput{Title: "Inception", Year: 2010, DirectorID: 99})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown director, got %v", err)
	}

	// The failed create must not leave a row behind.
	movies, err := svc.GetAllMovies(ctx)
	if err != nil {
		t.Fatalf("GetAllMovies failed: %v", err)
	}
	if len(movies) != 0 {
		t.Errorf("expected no movies after failed create, got %d", len(movies))
	}
}

func TestCreateMovieDropsUnknownGenreIDs(t *testing.T) {
	svc, db := newCatalogService(t)
	ctx := context.Background()

	directorID := mustCreateDirector(t, db, "Christopher Nolan")
	genreID := mustCreateGenre(t, db, "Sci-Fi")

	movie, err := svc.CreateMovie(ctx, MovieInput{
		Title:      "Inception",
		Year:       2010,
		DirectorID: directorID,
		GenreIDs:   []uint{genreID, 999},
	})
	if err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}
	if len(movie.Genres) != 1 || movie.Genres[0].Name != "Sci-Fi" {
		t.Errorf("expected unknown genre id to be dropped silently, got %+v", movie.Genres)
	}
}

func TestCreateMovieWithNamesResolvesOnce(t *testing.T) {
	svc, _ := newCatalogService(t)
	ctx := context.Background()

	first, err := svc.CreateMovieWithNames(ctx, MovieNameInput{
		Title:        "Inception",
		Year:         2010,
		DirectorName: "Christopher Nolan",
		GenreNames:   []string{"Sci-Fi", " sci-fi ", ""},
	})
	if err != nil {
		t.Fatalf("first CreateMovieWithNames failed: %v", err)
	}
	if len(first.Genres) != 1 {
		t.Errorf("expected duplicate and blank genre names to collapse, got %d genres", len(first.Genres))
	}

	second, err := svc.CreateMovieWithNames(ctx, MovieNameInput{
		Title:        "Oppenheimer",
		Year:         2023,
		DirectorName: "christopher nolan",
		GenreNames:   []string{"SCI-FI"},
	})
	if err != nil {
		t.Fatalf("second CreateMovieWithNames failed: %v", err)
	}
	if second.DirectorID != first.DirectorID {
		t.Errorf("expected director to be reused across case variants, got ids %d and %d", first.DirectorID, second.DirectorID)
	}

	directors, err := svc.GetAllDirectors(ctx)
	if err != nil {
		t.Fatalf("GetAllDirectors failed: %v", err)
	}
	if len(directors) != 1 {
		t.Errorf("expected 1 director, got %d", len(directors))
	}

	genres, err := svc.GetAllGenres(ctx)
	if err != nil {
		t.Fatalf("GetAllGenres failed: %v", err)
	}
	if len(genres) != 1 {
		t.Errorf("expected 1 genre, got %d", len(genres))
	}
}

func TestUpdateMovieUnknownIDReturnsNil(t *testing.T) {
	svc, db := newCatalogService(t)
	ctx := context.Background()

	directorID := mustCreateDirector(t, db, "Christopher Nolan")

	movie, err := svc.UpdateMovie(ctx, 42, MovieInput{Title: "Ghost", DirectorID: directorID})
	if err != nil {
		t.Fatalf("UpdateMovie failed: %v", err)
	}
	if movie != nil {
		t.Errorf("expected nil result for unknown movie id, got %+v", movie)
	}

	movies, err := svc.GetAllMovies(ctx)
	if err != nil {
		t.Fatalf("GetAllMovies failed: %v", err)
	}
	if len(movies) != 0 {
		t.Errorf("expected store untouched after no-op update, got %d movies", len(movies))
	}
}

func TestUpdateMovieReplacesAllFields(t *testing.T) {
	svc, db := newCatalogService(t)
	ctx := context.Background()

	nolanID := mustCreateDirector(t, db, "Christopher Nolan")
	villeneuveID := mustCreateDirector(t, db, "Denis Villeneuve")
	scifiID := mustCreateGenre(t, db, "Sci-Fi")
	dramaID := mustCreateGenre(t, db, "Drama")

	created, err := svc.CreateMovie(ctx, MovieInput{
		Title:      "Inception",
		Year:       2010,
		DirectorID: nolanID,
		GenreIDs:   []uint{scifiID},
	})
	if err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}

	updated, err := svc.UpdateMovie(ctx, created.ID, MovieInput{
		Title:       "Arrival",
		Year:        2016,
		Description: "First contact",
		DirectorID:  villeneuveID,
		GenreIDs:    []uint{dramaID},
	})
	if err != nil {
		t.Fatalf("UpdateMovie failed: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated movie")
	}
	if updated.Title != "Arrival" || updated.Year != 2016 || updated.Description != "First contact" {
		t.Errorf("unexpected fields after update: %+v", updated)
	}
	if updated.Director == nil || updated.Director.Name != "Denis Villeneuve" {
		t.Errorf("expected director to be replaced, got %+v", updated.Director)
	}
	if len(updated.Genres) != 1 || updated.Genres[0].Name != "Drama" {
		t.Errorf("expected genre set to be replaced, got %+v", updated.Genres)
	}
}

func TestAddReviewUnknownMovieFails(t *testing.T) {
	svc, _ := newCatalogService(t)

	_, err := svc.AddReview(context.Background(), 42, 5, "great", "Amanda")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown movie, got %v", err)
	}
}

func TestCatalogEndToEnd(t *testing.T) {
	svc, _ := newCatalogService(t)
	ctx := context.Background()

	movie, err := svc.CreateMovieWithNames(ctx, MovieNameInput{
		Title:        "Inception",
		Year:         2010,
		Description:  "Dream heist",
		DirectorName: "Christopher Nolan",
		GenreNames:   []string{"Sci-Fi"},
	})
	if err != nil {
		t.Fatalf("CreateMovieWithNames failed: %v", err)
	}

	review, err := svc.AddReview(ctx, movie.ID, 5, "Mind-bending.", "Amanda")
	if err != nil {
		t.Fatalf("AddReview failed: %v", err)
	}
	if review.ID == 0 {
		t.Error("expected persisted review to have an id")
	}

	movies, err := svc.GetAllMovies(ctx)
	if err != nil {
		t.Fatalf("GetAllMovies failed: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("expected 1 movie, got %d", len(movies))
	}

	got := movies[0]
	if got.Title != "Inception" || got.Year != 2010 {
		t.Errorf("unexpected movie: %+v", got)
	}
	if got.Director == nil || got.Director.Name != "Christopher Nolan" {
		t.Errorf("expected director Christopher Nolan, got %+v", got.Director)
	}
	if len(got.Genres) != 1 || got.Genres[0].Name != "Sci-Fi" {
		t.Errorf("expected genre Sci-Fi, got %+v", got.Genres)
	}
	if len(got.Reviews) != 1 || got.Reviews[0].UserName != "Amanda" || got.Reviews[0].Rating != 5 {
		t.Errorf("expected Amanda's 5-star review, got %+v", got.Reviews)
	}
}

func TestShowLifecycle(t *testing.T) {
	svc, _ := newCatalogService(t)
	ctx := context.Background()

	show, err := svc.CreateShowWithNames(ctx, ShowNameInput{
		Title:        "Severance",
		Year:         2022,
		DirectorName: "Ben Stiller",
		GenreNames:   []string{"Thriller"},
	})
	if err != nil {
		t.Fatalf("CreateShowWithNames failed: %v", err)
	}

	updated, err := svc.UpdateShowWithNames(ctx, show.ID, ShowNameInput{
		Title:        "Severance",
		Year:         2022,
		Description:  "Work-life split",
		DirectorName: "Ben Stiller",
		GenreNames:   []string{"Thriller", "Drama"},
	})
	if err != nil {
		t.Fatalf("UpdateShowWithNames failed: %v", err)
	}
	if updated.Description != "Work-life split" {
		t.Errorf("expected updated description, got %q", updated.Description)
	}
	if len(updated.Genres) != 2 {
		t.Errorf("expected 2 genres after update, got %d", len(updated.Genres))
	}

	deleted, err := svc.DeleteShow(ctx, show.ID)
	if err != nil {
		t.Fatalf("DeleteShow failed: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report a removed row")
	}

	absent, err := svc.GetShowByID(ctx, show.ID)
	if err != nil {
		t.Fatalf("GetShowByID failed: %v", err)
	}
	if absent != nil {
		t.Errorf("expected nil after delete, got %+v", absent)
	}
}
