package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id uint) (bool, error)
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindAll(ctx context.Context) ([]models.Movie, error)
	Search(ctx context.Context, query, genre, sortBy string) ([]models.Movie, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(movie).Error
}

// Update replaces every column and the genre association in one transaction.
func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(movie).Error; err != nil {
			return err
		}
		return tx.Model(movie).Association("Genres").Replace(movie.Genres)
	})
}

// Delete removes the movie, its reviews and its join rows. Genres and the
// director stay. Returns false when no row matched the id.
func (r *movieRepository) Delete(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Movie{ID: id}).Association("Genres").Clear(); err != nil {
			return err
		}
		result := tx.Delete(&models.Movie{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).
		Preload("Director").Preload("Genres").Preload("Reviews").
		First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Preload("Director").Preload("Genres").Preload("Reviews").
		Order("title").
		Find(&movies).Error
	return movies, err
}

// Search matches the free-text query against title, description, director and
// genre names, optionally narrows to one genre, and sorts by title or year.
func (r *movieRepository) Search(ctx context.Context, query, genre, sortBy string) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	q := r.db.WithContext(ctx).Model(&models.Movie{}).
		Joins("JOIN directors ON directors.id = movies.director_id").
		Joins("LEFT JOIN movie_genres ON movie_genres.movie_id = movies.id").
		Joins("LEFT JOIN genres ON genres.id = movie_genres.genre_id")

	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"LOWER(movies.title) LIKE ? OR LOWER(movies.description) LIKE ? OR LOWER(directors.name) LIKE ? OR LOWER(genres.name) LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	if genre != "" {
		q = q.Where("LOWER(genres.name) LIKE ?", "%"+strings.ToLower(genre)+"%")
	}

	if sortBy == "year" {
		q = q.Order("movies.year")
	} else {
		q = q.Order("movies.title")
	}

	var movies []models.Movie
	err := q.Distinct("movies.*").
		Preload("Director").Preload("Genres").Preload("Reviews").
		Find(&movies).Error
	return movies, err
}
