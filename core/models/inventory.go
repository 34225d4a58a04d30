package models

import "time"

// Inventory is the last synced snapshot of what a user owns.
type Inventory struct {
	ID       uint      `gorm:"primaryKey;column:id" json:"id"`
	UserID   string    `gorm:"column:user_id;type:varchar(36);uniqueIndex" json:"userId"`
	SyncedAt time.Time `gorm:"column:synced_at" json:"syncedAt"`

	Items []InventoryItem `gorm:"foreignKey:InventoryID" json:"items,omitempty"`
}

func (Inventory) TableName() string {
	return "inventories"
}

// InventoryItem is one owned item and its amount.
type InventoryItem struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"-"`
	InventoryID uint   `gorm:"column:inventory_id;uniqueIndex:idx_inventory_items_item" json:"-"`
	ItemID      string `gorm:"column:item_id;type:varchar(64);uniqueIndex:idx_inventory_items_item" json:"itemId"`
	Amount      int    `gorm:"column:amount" json:"amount"`

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}
