package repository

import (
	"context"
	"fmt"

	"github.com/GiyoMoon/WitchTrade-BE/core/models"
)

// NotificationExists reports whether target was already told source offers item.
func (r *Repository) NotificationExists(ctx context.Context, targetUserID, sourceUserID, itemID string) (bool, error) {
	var count int64
	err := r.conn(ctx).Model(&models.Notification{}).
		Where("target_user_id = ? AND source_user_id = ? AND target_item_id = ?", targetUserID, sourceUserID, itemID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count notifications: %w", err)
	}
	return count > 0, nil
}

// CreateNotification inserts a notification.
func (r *Repository) CreateNotification(ctx context.Context, n *models.Notification) error {
	if err := r.conn(ctx).Omit("SourceUser", "TargetItem").Create(n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// DeleteNotificationsFor removes the notifications of targetUserID about any of
// itemIDs and returns how many were removed.
func (r *Repository) DeleteNotificationsFor(ctx context.Context, targetUserID string, itemIDs []string) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}
	res := r.conn(ctx).
		Where("target_user_id = ? AND target_item_id IN ?", targetUserID, itemIDs).
		Delete(&models.Notification{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete notifications: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// ListNotifications lists a user's notifications, newest first.
func (r *Repository) ListNotifications(ctx context.Context, targetUserID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.conn(ctx).
		Preload("SourceUser").
		Preload("TargetItem").
		Where("target_user_id = ?", targetUserID).
		Order("id DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications of user %s: %w", targetUserID, err)
	}
	return notifications, nil
}

// FindNotification loads one notification.
func (r *Repository) FindNotification(ctx context.Context, id uint) (*models.Notification, error) {
	var n models.Notification
	if err := r.conn(ctx).First(&n, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find notification %d: %w", id, err)
	}
	return &n, nil
}

// DeleteNotification removes one notification.
func (r *Repository) DeleteNotification(ctx context.Context, id uint) error {
	if err := r.conn(ctx).Delete(&models.Notification{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete notification %d: %w", id, err)
	}
	return nil
}
