package repository

import (
	"context"
	"testing"

	"movie-catalog/internal/models"
)

func TestMovieCreateAndFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	nolan := createDirector(t, db, "Christopher Nolan")
	scifi := createGenre(t, db, "Sci-Fi")

	movie := &models.Movie{
		Title:       "Inception",
		Year:        2010,
		Description: "Dream heist",
		DirectorID:  nolan.ID,
		Genres:      []models.Genre{*scifi},
	}
	if err := repo.Create(ctx, movie); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if movie.ID == 0 {
		t.Fatal("expected generated id after create")
	}

	found, err := repo.FindByID(ctx, movie.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found == nil {
		t.Fatal("expected movie to be found")
	}
	if found.Title != "Inception" || found.Year != 2010 {
		t.Errorf("unexpected fields: title=%q year=%d", found.Title, found.Year)
	}
	if found.Director == nil || found.Director.Name != "Christopher Nolan" {
		t.Errorf("expected director to be preloaded, got %+v", found.Director)
	}
	if len(found.Genres) != 1 || found.Genres[0].Name != "Sci-Fi" {
		t.Errorf("expected one Sci-Fi genre, got %+v", found.Genres)
	}
}

func TestMovieFindByIDAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)

	movie, err := repo.FindByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if movie != nil {
		t.Errorf("expected nil for unknown id, got %+v", movie)
	}
}

func TestMovieUpdateReplacesGenreSet(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	nolan := createDirector(t, db, "Christopher Nolan")
	scifi := createGenre(t, db, "Sci-Fi")
	thriller := createGenre(t, db, "Thriller")

	movie := &models.Movie{
		Title:      "Inception",
		Year:       2010,
		DirectorID: nolan.ID,
		Genres:     []models.Genre{*scifi},
	}
	if err := repo.Create(ctx, movie); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	movie.Title = "Inception (Director's Cut)"
	movie.Genres = []models.Genre{*thriller}
	if err := repo.Update(ctx, movie); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := repo.FindByID(ctx, movie.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Title != "Inception (Director's Cut)" {
		t.Errorf("expected updated title, got %q", found.Title)
	}
	if len(found.Genres) != 1 || found.Genres[0].Name != "Thriller" {
		t.Errorf("expected genre set to be replaced with Thriller, got %+v", found.Genres)
	}
}

func TestMovieDeleteCascadesReviewsOnly(t *testing.T) {
	db := newTestDB(t)
	movieRepo := NewMovieRepository(db)
	reviewRepo := NewReviewRepository(db)
	ctx := context.Background()

	nolan := createDirector(t, db, "Christopher Nolan")
	scifi := createGenre(t, db, "Sci-Fi")

	movie := &models.Movie{
		Title:      "Inception",
		Year:       2010,
		DirectorID: nolan.ID,
		Genres:     []models.Genre{*scifi},
	}
	if err := movieRepo.Create(ctx, movie); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	review := &models.Review{UserName: "Amanda", Rating: 5, MovieID: movie.ID}
	if err := reviewRepo.Create(ctx, review); err != nil {
		t.Fatalf("review Create failed: %v", err)
	}

	deleted, err := movieRepo.Delete(ctx, movie.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report a removed row")
	}

	reviews, err := reviewRepo.FindByMovieID(ctx, movie.ID)
	if err != nil {
		t.Fatalf("FindByMovieID failed: %v", err)
	}
	if len(reviews) != 0 {
		t.Errorf("expected reviews to be deleted with the movie, got %d", len(reviews))
	}

	// Director and genre survive the cascade.
	director, err := NewDirectorRepository(db).FindByID(ctx, nolan.ID)
	if err != nil || director == nil {
		t.Errorf("expected director to survive movie delete, got %+v err=%v", director, err)
	}
	genre, err := NewGenreRepository(db).FindByName(ctx, "Sci-Fi")
	if err != nil || genre == nil {
		t.Errorf("expected genre to survive movie delete, got %+v err=%v", genre, err)
	}

	// Second delete on the same id reports nothing removed.
	deleted, err = movieRepo.Delete(ctx, movie.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if deleted {
		t.Error("expected second delete to report false")
	}
}

func TestMovieSearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	nolan := createDirector(t, db, "Christopher Nolan")
	villeneuve := createDirector(t, db, "Denis Villeneuve")
	scifi := createGenre(t, db, "Sci-Fi")
	drama := createGenre(t, db, "Drama")

	movies := []*models.Movie{
		{Title: "Inception", Year: 2010, DirectorID: nolan.ID, Genres: []models.Genre{*scifi}},
		{Title: "Arrival", Year: 2016, DirectorID: villeneuve.ID, Genres: []models.Genre{*scifi, *drama}},
		{Title: "Oppenheimer", Year: 2023, DirectorID: nolan.ID, Genres: []models.Genre{*drama}},
	}
	for _, m := range movies {
		if err := repo.Create(ctx, m); err != nil {
			t.Fatalf("Create %q failed: %v", m.Title, err)
		}
	}

	tests := []struct {
		name   string
		query  string
		genre  string
		sortBy string
		want   []string
	}{
		{"all sorted by title", "", "", "title", []string{"Arrival", "Inception", "Oppenheimer"}},
		{"all sorted by year", "", "", "year", []string{"Inception", "Arrival", "Oppenheimer"}},
		{"by director name", "nolan", "", "title", []string{"Inception", "Oppenheimer"}},
		{"by genre filter", "", "Sci-Fi", "title", []string{"Arrival", "Inception"}},
		{"by title fragment", "incep", "", "title", []string{"Inception"}},
		{"no match", "nosuchmovie", "", "title", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.query, tt.genre, tt.sortBy)
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d movies, got %d", len(tt.want), len(got))
			}
			for i, title := range tt.want {
				if got[i].Title != title {
					t.Errorf("position %d: expected %q, got %q", i, title, got[i].Title)
				}
			}
		})
	}
}
