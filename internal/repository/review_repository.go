package repository

import (
	"context"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByMovieID(ctx context.Context, movieID uint) ([]models.Review, error)
}

type reviewRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewReviewRepository(db *database.Database) ReviewRepository {
	return &reviewRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *reviewRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID uint) ([]models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
