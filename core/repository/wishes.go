package repository

import (
	"context"
	"fmt"

	"github.com/GiyoMoon/WitchTrade-BE/core/models"
)

// ListWishItemIDs returns the item ids a market wishes for.
func (r *Repository) ListWishItemIDs(ctx context.Context, marketID uint) ([]string, error) {
	var ids []string
	err := r.conn(ctx).Model(&models.Wish{}).Where("market_id = ?", marketID).Pluck("item_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wishes of market %d: %w", marketID, err)
	}
	return ids, nil
}

// FindWishesForItems returns the wishes of other markets for any of itemIDs,
// with market and item loaded.
func (r *Repository) FindWishesForItems(ctx context.Context, itemIDs []string, excludeMarketID uint) ([]models.Wish, error) {
	var wishes []models.Wish
	if len(itemIDs) == 0 {
		return wishes, nil
	}
	err := r.conn(ctx).
		Preload("Market").
		Preload("Item").
		Where("item_id IN ? AND market_id <> ?", itemIDs, excludeMarketID).
		Order("id").
		Find(&wishes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find wishes for items: %w", err)
	}
	return wishes, nil
}

// FindWish loads a wish with its market.
func (r *Repository) FindWish(ctx context.Context, id uint) (*models.Wish, error) {
	var wish models.Wish
	if err := r.conn(ctx).Preload("Market").First(&wish, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find wish %d: %w", id, err)
	}
	return &wish, nil
}

// WishExists reports whether the market already wishes for the item.
func (r *Repository) WishExists(ctx context.Context, marketID uint, itemID string) (bool, error) {
	var count int64
	err := r.conn(ctx).Model(&models.Wish{}).
		Where("market_id = ? AND item_id = ?", marketID, itemID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count wishes: %w", err)
	}
	return count > 0, nil
}

// CreateWish inserts a wish.
func (r *Repository) CreateWish(ctx context.Context, wish *models.Wish) error {
	if err := r.conn(ctx).Omit("Market", "Item").Create(wish).Error; err != nil {
		return fmt.Errorf("failed to create wish: %w", err)
	}
	return nil
}

// DeleteWish removes a wish.
func (r *Repository) DeleteWish(ctx context.Context, id uint) error {
	if err := r.conn(ctx).Delete(&models.Wish{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete wish %d: %w", id, err)
	}
	return nil
}
