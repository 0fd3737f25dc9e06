package services

import (
	"context"
	"fmt"
	"strings"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

// MovieInput carries the id-based fields of a movie create or update.
type MovieInput struct {
	Title       string
	Year        int
	Description string
	ImageURL    string
	DirectorID  uint
	GenreIDs    []uint
}

// MovieNameInput is the form-submission variant: director and genres arrive
// as free-text names and are resolved (created if absent) before persisting.
type MovieNameInput struct {
	Title        string
	Year         int
	Description  string
	ImageURL     string
	DirectorName string
	GenreNames   []string
}

type ShowInput struct {
	Title       string
	Year        int
	Description string
	DirectorID  uint
	GenreIDs    []uint
}

type ShowNameInput struct {
	Title        string
	Year         int
	Description  string
	DirectorName string
	GenreNames   []string
}

type CatalogService interface {
	// Movie operations
	CreateMovie(ctx context.Context, in MovieInput) (*models.Movie, error)
	CreateMovieWithNames(ctx context.Context, in MovieNameInput) (*models.Movie, error)
	UpdateMovie(ctx context.Context, id uint, in MovieInput) (*models.Movie, error)
	UpdateMovieWithNames(ctx context.Context, id uint, in MovieNameInput) (*models.Movie, error)
	DeleteMovie(ctx context.Context, id uint) (bool, error)
	GetMovieByID(ctx context.Context, id uint) (*models.Movie, error)
	GetAllMovies(ctx context.Context) ([]models.Movie, error)
	SearchMovies(ctx context.Context, query, genre, sortBy string) ([]models.Movie, error)

	// Review operations
	AddReview(ctx context.Context, movieID uint, rating int, comment, userName string) (*models.Review, error)

	// Show operations
	CreateShow(ctx context.Context, in ShowInput) (*models.Show, error)
	CreateShowWithNames(ctx context.Context, in ShowNameInput) (*models.Show, error)
	UpdateShow(ctx context.Context, id uint, in ShowInput) (*models.Show, error)
	UpdateShowWithNames(ctx context.Context, id uint, in ShowNameInput) (*models.Show, error)
	DeleteShow(ctx context.Context, id uint) (bool, error)
	GetShowByID(ctx context.Context, id uint) (*models.Show, error)
	GetAllShows(ctx context.Context) ([]models.Show, error)

	// Lookup data for dropdowns and listings
	GetAllDirectors(ctx context.Context) ([]models.Director, error)
	GetAllGenres(ctx context.Context) ([]models.Genre, error)
}

type catalogService struct {
	movieRepo    repository.MovieRepository
	showRepo     repository.ShowRepository
	directorRepo repository.DirectorRepository
	genreRepo    repository.GenreRepository
	reviewRepo   repository.ReviewRepository
	logger       *logrus.Logger
}

func NewCatalogService(
	movieRepo repository.MovieRepository,
	showRepo repository.ShowRepository,
	directorRepo repository.DirectorRepository,
	genreRepo repository.GenreRepository,
	reviewRepo repository.ReviewRepository,
	logger *logrus.Logger,
) CatalogService {
	return &catalogService{
		movieRepo:    movieRepo,
		showRepo:     showRepo,
		directorRepo: directorRepo,
		genreRepo:    genreRepo,
		reviewRepo:   reviewRepo,
		logger:       logger,
	}
}

// requireDirector fails with ErrNotFound when the id resolves to nothing.
func (s *catalogService) requireDirector(ctx context.Context, id uint) error {
	director, err := s.directorRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if director == nil {
		return fmt.Errorf("director %d: %w", id, ErrNotFound)
	}
	return nil
}

// resolveGenres maps free-text genre names to rows, creating missing ones.
// Blank entries are skipped and case-insensitive duplicates collapse to one.
func (s *catalogService) resolveGenres(ctx context.Context, names []string) ([]models.Genre, error) {
	seen := make(map[string]bool, len(names))
	var genres []models.Genre

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		genre, err := s.genreRepo.FindOrCreateByName(ctx, name)
		if err != nil {
			return nil, err
		}
		genres = append(genres, *genre)
	}

	return genres, nil
}

func (s *catalogService) CreateMovie(ctx context.Context, in MovieInput) (*models.Movie, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("movie title is required")
	}

	if err := s.requireDirector(ctx, in.DirectorID); err != nil {
		return nil, err
	}

	// Unknown genre ids are dropped without error.
	genres, err := s.genreRepo.FindByIDs(ctx, in.GenreIDs)
	if err != nil {
		return nil, err
	}

	movie := &models.Movie{
		Title:       in.Title,
		Year:        in.Year,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		DirectorID:  in.DirectorID,
		Genres:      genres,
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}

	return s.movieRepo.FindByID(ctx, movie.ID)
}

func (s *catalogService) CreateMovieWithNames(ctx context.Context, in MovieNameInput) (*models.Movie, error) {
	director, err := s.directorRepo.FindOrCreateByName(ctx, in.DirectorName)
	if err != nil {
		return nil, err
	}

	genres, err := s.resolveGenres(ctx, in.GenreNames)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"director": director.Name,
		"genres":   len(genres),
	}).Debug("Resolved names for movie create")

	return s.CreateMovie(ctx, MovieInput{
		Title:       in.Title,
		Year:        in.Year,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		DirectorID:  director.ID,
		GenreIDs:    genreIDs(genres),
	})
}

// UpdateMovie replaces every field of the movie. An unknown movie id is not
// an error: it returns (nil, nil) and leaves the store untouched. An unknown
// director id fails the whole update with ErrNotFound.
func (s *catalogService) UpdateMovie(ctx context.Context, id uint, in MovieInput) (*models.Movie, error) {
	existing, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if err := s.requireDirector(ctx, in.DirectorID); err != nil {
		return nil, err
	}

	genres, err := s.genreRepo.FindByIDs(ctx, in.GenreIDs)
	if err != nil {
		return nil, err
	}

	existing.Title = in.Title
	existing.Year = in.Year
	existing.Description = in.Description
	existing.ImageURL = in.ImageURL
	existing.DirectorID = in.DirectorID
	existing.Genres = genres
	existing.Director = nil

	if err := s.movieRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return s.movieRepo.FindByID(ctx, id)
}

func (s *catalogService) UpdateMovieWithNames(ctx context.Context, id uint, in MovieNameInput) (*models.Movie, error) {
	director, err := s.directorRepo.FindOrCreateByName(ctx, in.DirectorName)
	if err != nil {
		return nil, err
	}

	genres, err := s.resolveGenres(ctx, in.GenreNames)
	if err != nil {
		return nil, err
	}

	return s.UpdateMovie(ctx, id, MovieInput{
		Title:       in.Title,
		Year:        in.Year,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		DirectorID:  director.ID,
		GenreIDs:    genreIDs(genres),
	})
}

func (s *catalogService) DeleteMovie(ctx context.Context, id uint) (bool, error) {
	return s.movieRepo.Delete(ctx, id)
}

func (s *catalogService) GetMovieByID(ctx context.Context, id uint) (*models.Movie, error) {
	return s.movieRepo.FindByID(ctx, id)
}

func (s *catalogService) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	return s.movieRepo.FindAll(ctx)
}

func (s *catalogService) SearchMovies(ctx context.Context, query, genre, sortBy string) ([]models.Movie, error) {
	return s.movieRepo.Search(ctx, query, genre, sortBy)
}

// AddReview attaches a review to an existing movie. Rating bounds are left to
// the boundary layer.
func (s *catalogService) AddReview(ctx context.Context, movieID uint, rating int, comment, userName string) (*models.Review, error) {
	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", movieID, ErrNotFound)
	}

	review := &models.Review{
		UserName: userName,
		Rating:   rating,
		Comment:  comment,
		MovieID:  movieID,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *catalogService) CreateShow(ctx context.Context, in ShowInput) (*models.Show, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("show title is required")
	}

	if err := s.requireDirector(ctx, in.DirectorID); err != nil {
		return nil, err
	}

	genres, err := s.genreRepo.FindByIDs(ctx, in.GenreIDs)
	if err != nil {
		return nil, err
	}

	show := &models.Show{
		Title:       in.Title,
		Year:        in.Year,
		Description: in.Description,
		DirectorID:  in.DirectorID,
		Genres:      genres,
	}

	if err := s.showRepo.Create(ctx, show); err != nil {
		return nil, err
	}

	return s.showRepo.FindByID(ctx, show.ID)
}

func (s *catalogService) CreateShowWithNames(ctx context.Context, in ShowNameInput) (*models.Show, error) {
	director, err := s.directorRepo.FindOrCreateByName(ctx, in.DirectorName)
	if err != nil {
		return nil, err
	}

	genres, err := s.resolveGenres(ctx, in.GenreNames)
	if err != nil {
		return nil, err
	}

	return s.CreateShow(ctx, ShowInput{
		Title:       in.Title,
		Year:        in.Year,
		Description: in.Description,
		DirectorID:  director.ID,
		GenreIDs:    genreIDs(genres),
	})
}

func (s *catalogService) UpdateShow(ctx context.Context, id uint, in ShowInput) (*models.Show, error) {
	existing, err := s.showRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if err := s.requireDirector(ctx, in.DirectorID); err != nil {
		return nil, err
	}

	genres, err := s.genreRepo.FindByIDs(ctx, in.GenreIDs)
	if err != nil {
		return nil, err
	}

	existing.Title = in.Title
	existing.Year = in.Year
	existing.Description = in.Description
	existing.DirectorID = in.DirectorID
	existing.Genres = genres
	existing.Director = nil

	if err := s.showRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return s.showRepo.FindByID(ctx, id)
}

func (s *catalogService) UpdateShowWithNames(ctx context.Context, id uint, in ShowNameInput) (*models.Show, error) {
	director, err := s.directorRepo.FindOrCreateByName(ctx, in.DirectorName)
	if err != nil {
		return nil, err
	}

	genres, err := s.resolveGenres(ctx, in.GenreNames)
	if err != nil {
		return nil, err
	}

	return s.UpdateShow(ctx, id, ShowInput{
		Title:       in.Title,
		Year:        in.Year,
		Description: in.Description,
		DirectorID:  director.ID,
		GenreIDs:    genreIDs(genres),
	})
}

func (s *catalogService) DeleteShow(ctx context.Context, id uint) (bool, error) {
	return s.showRepo.Delete(ctx, id)
}

func (s *catalogService) GetShowByID(ctx context.Context, id uint) (*models.Show, error) {
	return s.showRepo.FindByID(ctx, id)
}

func (s *catalogService) GetAllShows(ctx context.Context) ([]models.Show, error) {
	return s.showRepo.FindAll(ctx)
}

func (s *catalogService) GetAllDirectors(ctx context.Context) ([]models.Director, error) {
	return s.directorRepo.FindAll(ctx)
}

func (s *catalogService) GetAllGenres(ctx context.Context) ([]models.Genre, error) {
	return s.genreRepo.FindAll(ctx)
}

func genreIDs(genres []models.Genre) []uint {
	ids := make([]uint, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, g.ID)
	}
	return ids
}
