package repository

import (
	"context"
	"fmt"

	"github.com/GiyoMoon/WitchTrade-BE/core/models"

	"gorm.io/gorm/clause"
)

// FindSyncSettings loads a user's sync settings.
func (r *Repository) FindSyncSettings(ctx context.Context, userID string) (*models.SyncSettings, error) {
	var s models.SyncSettings
	if err := r.conn(ctx).First(&s, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to find sync settings of user %s: %w", userID, err)
	}
	return &s, nil
}

// SaveSyncSettings inserts or replaces the settings row of s.UserID.
func (r *Repository) SaveSyncSettings(ctx context.Context, s *models.SyncSettings) error {
	err := r.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(s).Error
	if err != nil {
		return fmt.Errorf("failed to save sync settings of user %s: %w", s.UserID, err)
	}
	return nil
}
