package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quizportal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Get(ctx context.Context, id uint) (models.User, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if isDuplicate(err) {
		return fmt.Errorf("user %q: %w", user.Email, ErrDuplicate)
	}
	return err
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return user, notFound(err, ErrUserNotFound)
}

func (r *GormUserRepository) Get(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return user, notFound(err, ErrUserNotFound)
}
