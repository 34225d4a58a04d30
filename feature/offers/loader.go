package offers

import (
	"github.com/GiyoMoon/WitchTrade-BE/core/reconcile"
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new offers feature.
func NewFeature(repo *repository.Repository, catalog *reconcile.CatalogCache, notifier Notifier, logger *zap.Logger) *Feature {
	svc := NewService(repo, catalog, notifier, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Service exposes the offer service to other entry points such as the CLI.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "offers"
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
