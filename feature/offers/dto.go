package offers

import (
	"github.com/GiyoMoon/WitchTrade-BE/core/models"
	"github.com/GiyoMoon/WitchTrade-BE/core/reconcile"
)

// PricingRequest prices a single offer.
type PricingRequest struct {
	MainPriceID          uint  `json:"mainPriceId" validate:"required"`
	MainPriceAmount      *int  `json:"mainPriceAmount" validate:"omitempty,gte=0"`
	SecondaryPriceID     *uint `json:"secondaryPriceId" validate:"omitempty,gt=0"`
	SecondaryPriceAmount *int  `json:"secondaryPriceAmount" validate:"omitempty,gte=0"`
	// WantsBoth is required when a secondary price is set.
	WantsBoth *bool `json:"wantsBoth"`
}

// CreateOfferRequest is the payload of POST /offers.
type CreateOfferRequest struct {
	ItemID   string `json:"itemId" validate:"required,max=64"`
	Quantity int    `json:"quantity" validate:"gte=0"`
	PricingRequest
}

// EditOfferRequest is the payload of PATCH /offers/:id. It replaces quantity
// and pricing of the offer.
type EditOfferRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
	PricingRequest
}

// SyncRequest is the payload of POST /offers/sync and /offers/sync/plan.
type SyncRequest struct {
	Mode       models.SyncMode `json:"mode" validate:"required,oneof=new existing both"`
	Rarity     int             `json:"rarity" validate:"gte=0,lte=31"`
	KeepItem   int             `json:"keepItem" validate:"gte=0"`
	KeepRecipe int             `json:"keepRecipe" validate:"gte=0"`

	MainPriceItemID       uint `json:"mainPriceItemId" validate:"required"`
	MainPriceRecipeID     uint `json:"mainPriceRecipeId" validate:"required"`
	MainPriceAmountItem   *int `json:"mainPriceAmountItem" validate:"omitempty,gte=0"`
	MainPriceAmountRecipe *int `json:"mainPriceAmountRecipe" validate:"omitempty,gte=0"`

	SecondaryPriceItemID       *uint `json:"secondaryPriceItemId" validate:"omitempty,gt=0"`
	SecondaryPriceRecipeID     *uint `json:"secondaryPriceRecipeId" validate:"omitempty,gt=0"`
	SecondaryPriceAmountItem   *int  `json:"secondaryPriceAmountItem" validate:"omitempty,gte=0"`
	SecondaryPriceAmountRecipe *int  `json:"secondaryPriceAmountRecipe" validate:"omitempty,gte=0"`

	WantsBothItem   *bool `json:"wantsBothItem"`
	WantsBothRecipe *bool `json:"wantsBothRecipe"`

	IgnoreWishlistItems bool     `json:"ignoreWishlistItems"`
	RemoveNoneOnStock   bool     `json:"removeNoneOnStock"`
	IgnoreList          []string `json:"ignoreList" validate:"omitempty,dive,required,max=64"`
}

// Params converts the request into reconciliation parameters.
func (r SyncRequest) Params() reconcile.Params {
	return reconcile.Params{
		Mode:                       r.Mode,
		Rarity:                     r.Rarity,
		KeepItem:                   r.KeepItem,
		KeepRecipe:                 r.KeepRecipe,
		MainPriceItemID:            r.MainPriceItemID,
		MainPriceRecipeID:          r.MainPriceRecipeID,
		MainPriceAmountItem:        r.MainPriceAmountItem,
		MainPriceAmountRecipe:      r.MainPriceAmountRecipe,
		SecondaryPriceItemID:       r.SecondaryPriceItemID,
		SecondaryPriceRecipeID:     r.SecondaryPriceRecipeID,
		SecondaryPriceAmountItem:   r.SecondaryPriceAmountItem,
		SecondaryPriceAmountRecipe: r.SecondaryPriceAmountRecipe,
		WantsBothItem:              r.WantsBothItem,
		WantsBothRecipe:            r.WantsBothRecipe,
		IgnoreWishlistItems:        r.IgnoreWishlistItems,
		RemoveNoneOnStock:          r.RemoveNoneOnStock,
		IgnoreList:                 r.IgnoreList,
	}
}

// UpdatedOffer is an offer whose quantity a sync changed.
type UpdatedOffer struct {
	ID          uint   `json:"id"`
	ItemID      string `json:"itemId"`
	OldQuantity int    `json:"oldQuantity"`
	NewQuantity int    `json:"newQuantity"`
}

// SyncResult reports what a sync changed.
type SyncResult struct {
	NewOffers     int `json:"newOffers"`
	UpdatedOffers int `json:"updatedOffers"`
	DeletedOffers int `json:"deletedOffers"`
	// SkippedItems counts items that would have been offered but whose main
	// price does not apply to them.
	SkippedItems int `json:"skippedItems"`

	Created []uint         `json:"created"`
	Updated []UpdatedOffer `json:"updated"`
	Deleted []uint         `json:"deleted"`

	// SettingsSaved is false when the parameters could not be stored as the
	// user's sync settings. The offer changes are kept either way.
	SettingsSaved bool `json:"settingsSaved"`
}

// DeleteAllResult reports how many offers DELETE /offers removed.
type DeleteAllResult struct {
	Deleted int `json:"deleted"`
}
