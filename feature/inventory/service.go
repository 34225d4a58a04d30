package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"
	"github.com/GiyoMoon/WitchTrade-BE/core/models"
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Entry is one owned item of a snapshot.
type Entry struct {
	ItemID string `json:"itemId" validate:"required,max=64"`
	Amount int    `json:"amount" validate:"gte=0"`
}

// ReplaceRequest is the payload of PUT /inventory.
type ReplaceRequest struct {
	Items []Entry `json:"items" validate:"dive"`
}

// Service handles inventory operations.
type Service struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewService creates a new inventory service.
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Get returns the user's latest snapshot.
func (s *Service) Get(ctx context.Context, userID string) (*models.Inventory, error) {
	inv, err := s.repo.FindInventory(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("user %s has no synced inventory", userID)
	}
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load inventory")
	}
	return inv, nil
}

// Replace stores entries as the user's snapshot. Entries with amount 0 are
// dropped.
func (s *Service) Replace(ctx context.Context, userID string, entries []Entry) (*models.Inventory, error) {
	if _, err := s.repo.FindUser(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("user %s not found", userID)
		}
		return nil, apperr.Wrap(err, "failed to load user")
	}

	owned := lo.Filter(entries, func(e Entry, _ int) bool { return e.Amount > 0 })
	ids := lo.Map(owned, func(e Entry, _ int) string { return e.ItemID })
	if dups := lo.FindDuplicates(ids); len(dups) > 0 {
		return nil, apperr.BadRequest("item %s is listed twice", dups[0])
	}

	items, err := s.repo.FindItems(ctx, ids)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load items")
	}
	known := lo.KeyBy(items, func(i models.Item) string { return i.ID })
	if unknown, ok := lo.Find(ids, func(id string) bool { _, ok := known[id]; return !ok }); ok {
		return nil, apperr.BadRequest("unknown item %s", unknown)
	}

	rows := lo.Map(owned, func(e Entry, _ int) models.InventoryItem {
		return models.InventoryItem{ItemID: e.ItemID, Amount: e.Amount}
	})
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		_, err := tx.ReplaceInventory(ctx, userID, rows, time.Now().UTC())
		return err
	})
	if err != nil {
		return nil, apperr.Wrap(err, "failed to store inventory")
	}

	s.logger.Debug("Inventory replaced", zap.String("user", userID), zap.Int("items", len(rows)))
	return s.Get(ctx, userID)
}
