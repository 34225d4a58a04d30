package catalog

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"
	"github.com/GiyoMoon/WitchTrade-BE/core/models"
	"github.com/GiyoMoon/WitchTrade-BE/core/reconcile"
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"
	"github.com/GiyoMoon/WitchTrade-BE/core/storage"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	itemsFile  = "items.json"
	pricesFile = "prices.json"
)

// ImportResult reports how many catalog rows an import wrote.
type ImportResult struct {
	Items  int `json:"items"`
	Prices int `json:"prices"`
}

// Service handles catalog operations.
type Service struct {
	repo   *repository.Repository
	client storage.Client
	bucket string
	prefix string
	cache  *reconcile.CatalogCache
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(repo *repository.Repository, client storage.Client, cfg storage.Config, cache *reconcile.CatalogCache, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.CatalogPrefix,
		cache:  cache,
		logger: logger,
	}
}

// ListItems lists catalog items matching filter.
func (s *Service) ListItems(ctx context.Context, filter repository.ItemFilter) ([]models.Item, error) {
	items, err := s.repo.ListItems(ctx, filter)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list items")
	}
	return items, nil
}

// ListPrices lists every price definition in display order.
func (s *Service) ListPrices(ctx context.Context) ([]models.Price, error) {
	catalog, err := s.cache.Get(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list prices")
	}
	return catalog.Prices, nil
}

// Import reads the catalog files from storage and upserts them.
func (s *Service) Import(ctx context.Context) (*ImportResult, error) {
	if err := s.checkBucket(ctx); err != nil {
		return nil, err
	}

	var items []models.Item
	if err := storage.GetJSON(ctx, s.client, s.bucket, s.object(itemsFile), &items); err != nil {
		return nil, apperr.Wrap(err, "failed to read items")
	}
	var prices []models.Price
	if err := storage.GetJSON(ctx, s.client, s.bucket, s.object(pricesFile), &prices); err != nil {
		return nil, apperr.Wrap(err, "failed to read prices")
	}
	if err := validateCatalog(items, prices); err != nil {
		return nil, err
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.UpsertPrices(ctx, prices); err != nil {
			return err
		}
		return tx.UpsertItems(ctx, items)
	})
	if err != nil {
		return nil, apperr.Wrap(err, "failed to import catalog")
	}
	s.cache.Invalidate()

	s.logger.Info("Catalog imported", zap.Int("items", len(items)), zap.Int("prices", len(prices)))
	return &ImportResult{Items: len(items), Prices: len(prices)}, nil
}

// Export writes the stored catalog to the catalog files.
func (s *Service) Export(ctx context.Context) (*ImportResult, error) {
	if err := s.checkBucket(ctx); err != nil {
		return nil, err
	}

	items, err := s.repo.ListItems(ctx, repository.ItemFilter{})
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list items")
	}
	prices, err := s.repo.ListPrices(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list prices")
	}

	if err := storage.PutJSON(ctx, s.client, s.bucket, s.object(itemsFile), items); err != nil {
		return nil, apperr.Wrap(err, "failed to write items")
	}
	if err := storage.PutJSON(ctx, s.client, s.bucket, s.object(pricesFile), prices); err != nil {
		return nil, apperr.Wrap(err, "failed to write prices")
	}

	s.logger.Info("Catalog exported", zap.Int("items", len(items)), zap.Int("prices", len(prices)))
	return &ImportResult{Items: len(items), Prices: len(prices)}, nil
}

func (s *Service) checkBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return apperr.Wrap(err, "failed to check bucket")
	}
	if !exists {
		return apperr.NotFound("bucket %s not found", s.bucket)
	}
	return nil
}

func (s *Service) object(name string) string {
	return path.Join(s.prefix, name)
}

func validateCatalog(items []models.Item, prices []models.Price) error {
	for i, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			return apperr.BadRequest("item %d has no id", i)
		}
		if item.TagRarity != "" && !lo.Contains(models.Rarities, item.TagRarity) {
			return apperr.BadRequest("item %s has unknown rarity %s", item.ID, item.TagRarity)
		}
	}
	if dup, ok := firstDuplicate(lo.Map(items, func(i models.Item, _ int) string { return i.ID })); ok {
		return apperr.BadRequest("item %s is listed twice", dup)
	}

	for _, p := range prices {
		if p.ID == 0 || p.PriceKey == "" {
			return apperr.BadRequest("price %d needs an id and a key", p.ID)
		}
	}
	if dup, ok := firstDuplicate(lo.Map(prices, func(p models.Price, _ int) string { return p.PriceKey })); ok {
		return apperr.BadRequest("price key %s is listed twice", dup)
	}
	if dup, ok := firstDuplicate(lo.Map(prices, func(p models.Price, _ int) string { return fmt.Sprint(p.ID) })); ok {
		return apperr.BadRequest("price id %s is listed twice", dup)
	}
	return nil
}

func firstDuplicate(values []string) (string, bool) {
	dups := lo.FindDuplicates(values)
	if len(dups) == 0 {
		return "", false
	}
	return dups[0], true
}
