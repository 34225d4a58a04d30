package cmd

import (
	"fmt"

	"github.com/GiyoMoon/WitchTrade-BE/core/config"
	"github.com/GiyoMoon/WitchTrade-BE/core/database"
	"github.com/GiyoMoon/WitchTrade-BE/core/logger"
	"github.com/GiyoMoon/WitchTrade-BE/core/reconcile"
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"
	"github.com/GiyoMoon/WitchTrade-BE/core/storage"
	"github.com/GiyoMoon/WitchTrade-BE/feature/catalog"
	"github.com/GiyoMoon/WitchTrade-BE/feature/notifications"
	"github.com/GiyoMoon/WitchTrade-BE/feature/offers"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles the dependencies every command builds on.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	repo   *repository.Repository
	cache  *reconcile.CatalogCache
}

func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logg = logg.With(zap.String("driver", cfg.Database.Driver))

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		logg.Info("Database schema migrated")
	}

	repo := repository.New(db)
	return &runtime{
		cfg:    cfg,
		logger: logg,
		db:     db,
		repo:   repo,
		cache:  reconcile.NewCatalogCache(cfg.Market.CatalogTTL(), repo.ListPrices),
	}, nil
}

func (r *runtime) notifier() *notifications.Notifier {
	return notifications.NewNotifier(r.repo, notifications.NewRecordSender(r.repo), r.logger)
}

func (r *runtime) offers() *offers.Service {
	return offers.NewService(r.repo, r.cache, r.notifier(), r.logger)
}

func (r *runtime) catalog() (*catalog.Service, error) {
	store, err := storage.NewClient(r.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return catalog.NewService(r.repo, store, r.cfg.Storage, r.cache, r.logger), nil
}

func (r *runtime) close() {
	if sqlDB, err := r.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = r.logger.Sync()
}
