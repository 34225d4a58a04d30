package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/GiyoMoon/WitchTrade-BE/core/models"

	"gorm.io/gorm"
)

// FindInventory loads a user's inventory with items.
func (r *Repository) FindInventory(ctx context.Context, userID string) (*models.Inventory, error) {
	var inventory models.Inventory
	err := r.conn(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("inventory_items.id") }).
		Preload("Items.Item").
		First(&inventory, "user_id = ?", userID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory of user %s: %w", userID, err)
	}
	return &inventory, nil
}

// ReplaceInventory swaps a user's inventory snapshot for entries.
// Call it inside Transaction so readers never see a half written snapshot.
func (r *Repository) ReplaceInventory(ctx context.Context, userID string, entries []models.InventoryItem, syncedAt time.Time) (*models.Inventory, error) {
	db := r.conn(ctx)

	var inventory models.Inventory
	err := db.Where(models.Inventory{UserID: userID}).
		Assign(models.Inventory{SyncedAt: syncedAt}).
		FirstOrCreate(&inventory).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert inventory of user %s: %w", userID, err)
	}

	if err := db.Where("inventory_id = ?", inventory.ID).Delete(&models.InventoryItem{}).Error; err != nil {
		return nil, fmt.Errorf("failed to clear inventory %d: %w", inventory.ID, err)
	}

	if len(entries) > 0 {
		rows := make([]models.InventoryItem, len(entries))
		for i, e := range entries {
			rows[i] = models.InventoryItem{InventoryID: inventory.ID, ItemID: e.ItemID, Amount: e.Amount}
		}
		if err := db.CreateInBatches(&rows, 500).Error; err != nil {
			return nil, fmt.Errorf("failed to write inventory %d: %w", inventory.ID, err)
		}
	}

	return &inventory, nil
}
