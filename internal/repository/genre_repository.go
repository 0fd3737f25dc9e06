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

type GenreRepository interface {
	FindByName(ctx context.Context, name string) (*models.Genre, error)
	FindOrCreateByName(ctx context.Context, name string) (*models.Genre, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Genre, error)
	FindAll(ctx context.Context) ([]models.Genre, error)
}

type genreRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *genreRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// FindByName does a case-insensitive exact match on the trimmed name.
func (r *genreRepository) FindByName(ctx context.Context, name string) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).
		First(&genre).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &genre, nil
}

// FindOrCreateByName resolves a genre name, inserting when absent. The insert
// goes through ON CONFLICT DO NOTHING against the unique name index and is
// followed by a re-read, so a concurrent insert of the same name resolves to
// the surviving row instead of erroring.
func (r *genreRepository) FindOrCreateByName(ctx context.Context, name string) (*models.Genre, error) {
	name = strings.TrimSpace(name)

	genre, err := r.FindByName(ctx, name)
	if err != nil || genre != nil {
		return genre, err
	}

	createCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	err = r.db.WithContext(createCtx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Genre{Name: name}).Error
	if err != nil {
		return nil, err
	}

	return r.FindByName(ctx, name)
}

// FindByIDs returns the genres whose ids exist. Unknown ids are simply not in
// the result; callers treat that as a silent drop.
func (r *genreRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genres []models.Genre
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&genres).Error
	return genres, err
}

func (r *genreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genres []models.Genre
	err := r.db.WithContext(ctx).Order("name").Find(&genres).Error
	return genres, err
}
