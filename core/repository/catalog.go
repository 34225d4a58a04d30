package repository

import (
	"context"
	"fmt"

	"github.com/GiyoMoon/WitchTrade-BE/core/models"

	"gorm.io/gorm/clause"
)

// ItemFilter narrows ListItems. Empty fields match everything.
type ItemFilter struct {
	Rarity        string
	Slot          string
	TradeableOnly bool
}

// FindItem loads one item.
func (r *Repository) FindItem(ctx context.Context, id string) (*models.Item, error) {
	var item models.Item
	if err := r.conn(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to find item %s: %w", id, err)
	}
	return &item, nil
}

// FindItems loads the items with the given ids. Unknown ids are skipped.
func (r *Repository) FindItems(ctx context.Context, ids []string) ([]models.Item, error) {
	var items []models.Item
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.conn(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find items: %w", err)
	}
	return items, nil
}

// ListItems lists catalog items ordered by id.
func (r *Repository) ListItems(ctx context.Context, filter ItemFilter) ([]models.Item, error) {
	q := r.conn(ctx).Order("id")
	if filter.Rarity != "" {
		q = q.Where("tag_rarity = ?", filter.Rarity)
	}
	if filter.Slot != "" {
		q = q.Where("tag_slot = ?", filter.Slot)
	}
	if filter.TradeableOnly {
		q = q.Where("tradeable = ?", true)
	}

	var items []models.Item
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// ListPrices lists every price definition in display order.
func (r *Repository) ListPrices(ctx context.Context) ([]models.Price, error) {
	var prices []models.Price
	if err := r.conn(ctx).Order("order_id").Order("id").Find(&prices).Error; err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}
	return prices, nil
}

// UpsertItems inserts items or overwrites existing ones by id.
func (r *Repository) UpsertItems(ctx context.Context, items []models.Item) error {
	if len(items) == 0 {
		return nil
	}
	err := r.conn(ctx).Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(&items, 500).Error
	if err != nil {
		return fmt.Errorf("failed to upsert items: %w", err)
	}
	return nil
}

// UpsertPrices inserts prices or overwrites existing ones by id.
func (r *Repository) UpsertPrices(ctx context.Context, prices []models.Price) error {
	if len(prices) == 0 {
		return nil
	}
	err := r.conn(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&prices).Error
	if err != nil {
		return fmt.Errorf("failed to upsert prices: %w", err)
	}
	return nil
}
