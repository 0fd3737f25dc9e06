package repository

import (
	"context"
	"errors"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	Update(ctx context.Context, show *models.Show) error
	Delete(ctx context.Context, id uint) (bool, error)
	FindByID(ctx context.Context, id uint) (*models.Show, error)
	FindAll(ctx context.Context) ([]models.Show, error)
}

type showRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewShowRepository(db *database.Database) ShowRepository {
	return &showRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *showRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(show).Error
}

func (r *showRepository) Update(ctx context.Context, show *models.Show) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(show).Error; err != nil {
			return err
		}
		return tx.Model(show).Association("Genres").Replace(show.Genres)
	})
}

func (r *showRepository) Delete(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Show{ID: id}).Association("Genres").Clear(); err != nil {
			return err
		}
		result := tx.Delete(&models.Show{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *showRepository) FindByID(ctx context.Context, id uint) (*models.Show, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var show models.Show
	err := r.db.WithContext(ctx).
		Preload("Director").Preload("Genres").
		First(&show, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &show, nil
}

func (r *showRepository) FindAll(ctx context.Context) ([]models.Show, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Director").Preload("Genres").
		Order("title").
		Find(&shows).Error
	return shows, err
}
