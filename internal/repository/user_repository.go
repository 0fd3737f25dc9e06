package repository

import (
	"context"
	"errors"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type userRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewUserRepository(db *database.Database) UserRepository {
	return &userRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *userRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
