package notifications

import (
	"context"
	"fmt"

	"github.com/GiyoMoon/WitchTrade-BE/core/metrics"
	"github.com/GiyoMoon/WitchTrade-BE/core/models"
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"
)

// Sender delivers one wish notification.
type Sender interface {
	SendNotification(ctx context.Context, targetUserID string, source *models.User, item *models.Item) error
}

// RecordSender delivers notifications by storing them.
type RecordSender struct {
	repo *repository.Repository
}

// NewRecordSender creates a sender writing through repo.
func NewRecordSender(repo *repository.Repository) *RecordSender {
	return &RecordSender{repo: repo}
}

// SendNotification stores the notification unless the target already has an
// identical one.
func (s *RecordSender) SendNotification(ctx context.Context, targetUserID string, source *models.User, item *models.Item) error {
	exists, err := s.repo.NotificationExists(ctx, targetUserID, source.ID, item.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	n := &models.Notification{
		TargetUserID: targetUserID,
		SourceUserID: source.ID,
		TargetItemID: item.ID,
	}
	if err := s.repo.CreateNotification(ctx, n); err != nil {
		return fmt.Errorf("failed to notify %s about %s: %w", targetUserID, item.ID, err)
	}

	metrics.Notifications.WithLabelValues(metrics.ActionSent).Inc()
	return nil
}
