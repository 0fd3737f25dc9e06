package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

type DirectorRepository interface {
	Create(ctx context.Context, director *models.Director) error
	FindByID(ctx context.Context, id uint) (*models.Director, error)
	FindByName(ctx context.Context, name string) (*models.Director, error)
	FindOrCreateByName(ctx context.Context, name string) (*models.Director, error)
	FindAll(ctx context.Context) ([]models.Director, error)
}

type directorRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewDirectorRepository(db *database.Database) DirectorRepository {
	return &directorRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *directorRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *directorRepository) Create(ctx context.Context, director *models.Director) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(director).Error
}

func (r *directorRepository) FindByID(ctx context.Context, id uint) (*models.Director, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var director models.Director
	err := r.db.WithContext(ctx).First(&director, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &director, nil
}

// FindByName does a case-insensitive exact match on the trimmed name.
func (r *directorRepository) FindByName(ctx context.Context, name string) (*models.Director, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var director models.Director
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).
		First(&director).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &director, nil
}

// FindOrCreateByName resolves a free-text director name to a row, creating
// one with only the name populated when no case-insensitive match exists.
// Directors carry no unique constraint, so two concurrent resolutions of the
// same new name can both insert; single-writer usage is assumed.
func (r *directorRepository) FindOrCreateByName(ctx context.Context, name string) (*models.Director, error) {
	name = strings.TrimSpace(name)

	director, err := r.FindByName(ctx, name)
	if err != nil || director != nil {
		return director, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	director = &models.Director{Name: name}
	if err := r.db.WithContext(ctx).Create(director).Error; err != nil {
		return nil, err
	}
	return director, nil
}

func (r *directorRepository) FindAll(ctx context.Context) ([]models.Director, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var directors []models.Director
	err := r.db.WithContext(ctx).Order("name").Find(&directors).Error
	return directors, err
}
