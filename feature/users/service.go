package users

import (
	"context"
	"errors"

	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"
	"github.com/GiyoMoon/WitchTrade-BE/core/models"
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RegisterRequest is the payload of POST /users.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64,alphanum"`
}

// Service handles user operations.
type Service struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewService creates a new user service.
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Register creates a user and their market.
func (s *Service) Register(ctx context.Context, username string) (*models.User, error) {
	taken, err := s.repo.UsernameTaken(ctx, username)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to check username")
	}
	if taken {
		return nil, apperr.BadRequest("username %s is taken", username)
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Username: username,
		Market:   &models.Market{},
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, apperr.Wrap(err, "failed to register user")
	}

	s.logger.Info("User registered", zap.String("user", user.ID), zap.String("username", username))
	return user, nil
}

// Get returns a user with their market.
func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.FindUser(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("user %s not found", id)
	}
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load user")
	}
	return user, nil
}
