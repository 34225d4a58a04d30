package repository

import (
	"context"
	"fmt"

	"github.com/GiyoMoon/WitchTrade-BE/core/models"
)

// FindUser loads a user with their market.
func (r *Repository) FindUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.conn(ctx).Preload("Market").First(&user, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", id, err)
	}
	return &user, nil
}

// CreateUser inserts a user and, when set, their market.
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	if err := r.conn(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.Username, err)
	}
	return nil
}

// UsernameTaken reports whether a user with username exists.
func (r *Repository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.conn(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return count > 0, nil
}
