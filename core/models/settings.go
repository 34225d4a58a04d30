package models

import (
	"time"

	"gorm.io/datatypes"
)

// SyncMode selects which reconciliation phases run.
type SyncMode string

const (
	// SyncModeNew only creates offers for items not yet offered.
	SyncModeNew SyncMode = "new"
	// SyncModeExisting only reconciles quantities of existing offers.
	SyncModeExisting SyncMode = "existing"
	// SyncModeBoth runs both phases.
	SyncModeBoth SyncMode = "both"
)

// CreatesOffers reports whether the discovery phase runs.
func (m SyncMode) CreatesOffers() bool {
	return m == SyncModeNew || m == SyncModeBoth
}

// ReconcilesOffers reports whether the existing-offer phase runs.
func (m SyncMode) ReconcilesOffers() bool {
	return m == SyncModeExisting || m == SyncModeBoth
}

// SyncSettings stores the last parameters a user synced offers with.
type SyncSettings struct {
	ID                         uint                        `gorm:"primaryKey;column:id" json:"-"`
	UserID                     string                      `gorm:"column:user_id;type:varchar(36);uniqueIndex" json:"-"`
	Mode                       SyncMode                    `gorm:"column:mode;type:varchar(16)" json:"mode"`
	Rarity                     int                         `gorm:"column:rarity" json:"rarity"`
	KeepItem                   int                         `gorm:"column:keep_item" json:"keepItem"`
	KeepRecipe                 int                         `gorm:"column:keep_recipe" json:"keepRecipe"`
	MainPriceItemID            uint                        `gorm:"column:main_price_item_id" json:"mainPriceItemId"`
	MainPriceRecipeID          uint                        `gorm:"column:main_price_recipe_id" json:"mainPriceRecipeId"`
	MainPriceAmountItem        *int                        `gorm:"column:main_price_amount_item" json:"mainPriceAmountItem"`
	MainPriceAmountRecipe      *int                        `gorm:"column:main_price_amount_recipe" json:"mainPriceAmountRecipe"`
	SecondaryPriceItemID       *uint                       `gorm:"column:secondary_price_item_id" json:"secondaryPriceItemId"`
	SecondaryPriceRecipeID     *uint                       `gorm:"column:secondary_price_recipe_id" json:"secondaryPriceRecipeId"`
	SecondaryPriceAmountItem   *int                        `gorm:"column:secondary_price_amount_item" json:"secondaryPriceAmountItem"`
	SecondaryPriceAmountRecipe *int                        `gorm:"column:secondary_price_amount_recipe" json:"secondaryPriceAmountRecipe"`
	WantsBothItem              *bool                       `gorm:"column:wants_both_item" json:"wantsBothItem"`
	WantsBothRecipe            *bool                       `gorm:"column:wants_both_recipe" json:"wantsBothRecipe"`
	IgnoreWishlistItems        bool                        `gorm:"column:ignore_wishlist_items" json:"ignoreWishlistItems"`
	RemoveNoneOnStock          bool                        `gorm:"column:remove_none_on_stock" json:"removeNoneOnStock"`
	IgnoreList                 datatypes.JSONSlice[string] `gorm:"column:ignore_list" json:"ignoreList"`
	UpdatedAt                  time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (SyncSettings) TableName() string {
	return "sync_settings"
}
