package catalog

import (
	"github.com/GiyoMoon/WitchTrade-BE/core/reconcile"
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"
	"github.com/GiyoMoon/WitchTrade-BE/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new catalog feature.
func NewFeature(repo *repository.Repository, client storage.Client, cfg storage.Config, cache *reconcile.CatalogCache, logger *zap.Logger) *Feature {
	svc := NewService(repo, client, cfg, cache, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Service exposes the catalog service to the CLI.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
