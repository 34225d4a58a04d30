package notifications

import (
	"context"
	"errors"

	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"
	"github.com/GiyoMoon/WitchTrade-BE/core/models"
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"

	"go.uber.org/zap"
)

// Service serves a user's own notifications.
type Service struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewService creates a new notification service.
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the notifications addressed to userID, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]models.Notification, error) {
	list, err := s.repo.ListNotifications(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list notifications")
	}
	return list, nil
}

// Delete dismisses one of userID's notifications.
func (s *Service) Delete(ctx context.Context, userID string, id uint) error {
	n, err := s.repo.FindNotification(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("notification %d not found", id)
	}
	if err != nil {
		return apperr.Wrap(err, "failed to load notification")
	}
	if n.TargetUserID != userID {
		return apperr.Unauthorized("notification %d belongs to another user", id)
	}

	if err := s.repo.DeleteNotification(ctx, id); err != nil {
		return apperr.Wrap(err, "failed to delete notification")
	}
	return nil
}
