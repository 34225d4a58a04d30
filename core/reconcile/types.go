package reconcile

import "github.com/GiyoMoon/WitchTrade-BE/core/models"

// Params are the parameters of one offer synchronization. They are persisted as
// the user's SyncSettings after a successful run.
type Params struct {
	Mode       models.SyncMode
	Rarity     int
	KeepItem   int
	KeepRecipe int

	MainPriceItemID       uint
	MainPriceRecipeID     uint
	MainPriceAmountItem   *int
	MainPriceAmountRecipe *int

	SecondaryPriceItemID       *uint
	SecondaryPriceRecipeID     *uint
	SecondaryPriceAmountItem   *int
	SecondaryPriceAmountRecipe *int

	WantsBothItem   *bool
	WantsBothRecipe *bool

	IgnoreWishlistItems bool
	RemoveNoneOnStock   bool
	IgnoreList          []string
}

// Input is the snapshot a plan is computed from. Inventory entries and offers
// must have their Item preloaded.
type Input struct {
	MarketID  uint
	Inventory []models.InventoryItem
	Offers    []models.Offer
	// Wishlist holds the item ids the owner wishes for. Only consulted when
	// Params.IgnoreWishlistItems is set.
	Wishlist []string
	Catalog  *Catalog
	Params   Params
}

// ActionType represents the type of planned offer change.
type ActionType string

const (
	// ActionCreate creates an offer for an item not offered yet.
	ActionCreate ActionType = "create"
	// ActionUpdate changes the quantity of an existing offer.
	ActionUpdate ActionType = "update"
	// ActionDelete removes an existing offer.
	ActionDelete ActionType = "delete"
)

// Action represents a planned change, keyed by item id.
type Action struct {
	Type   ActionType `json:"type"`
	Key    string     `json:"key"`
	Reason string     `json:"reason"`
}

// QuantityChange is an existing offer whose quantity changes.
// Offer already carries NewQuantity.
type QuantityChange struct {
	Offer       models.Offer `json:"offer"`
	OldQuantity int          `json:"oldQuantity"`
	NewQuantity int          `json:"newQuantity"`
}

// Plan is the offer set transition computed by BuildPlan.
type Plan struct {
	Create  []models.Offer   `json:"create"`
	Update  []QuantityChange `json:"update"`
	Delete  []models.Offer   `json:"delete"`
	Actions []Action         `json:"actions"`
	Summary PlanSummary      `json:"summary"`
}

// PlanSummary provides aggregate counts for a plan.
type PlanSummary struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
	// Skipped counts inventory entries that qualified for an offer but whose main
	// price could not be resolved for the item.
	Skipped int `json:"skipped"`
}

// Changed returns created and updated offers with their final quantities.
func (p *Plan) Changed() []models.Offer {
	changed := make([]models.Offer, 0, len(p.Create)+len(p.Update))
	changed = append(changed, p.Create...)
	for _, u := range p.Update {
		changed = append(changed, u.Offer)
	}
	return changed
}

// ParamsFromSettings restores the parameters of a previous run.
func ParamsFromSettings(s models.SyncSettings) Params {
	return Params{
		Mode:                       s.Mode,
		Rarity:                     s.Rarity,
		KeepItem:                   s.KeepItem,
		KeepRecipe:                 s.KeepRecipe,
		MainPriceItemID:            s.MainPriceItemID,
		MainPriceRecipeID:          s.MainPriceRecipeID,
		MainPriceAmountItem:        s.MainPriceAmountItem,
		MainPriceAmountRecipe:      s.MainPriceAmountRecipe,
		SecondaryPriceItemID:       s.SecondaryPriceItemID,
		SecondaryPriceRecipeID:     s.SecondaryPriceRecipeID,
		SecondaryPriceAmountItem:   s.SecondaryPriceAmountItem,
		SecondaryPriceAmountRecipe: s.SecondaryPriceAmountRecipe,
		WantsBothItem:              s.WantsBothItem,
		WantsBothRecipe:            s.WantsBothRecipe,
		IgnoreWishlistItems:        s.IgnoreWishlistItems,
		RemoveNoneOnStock:          s.RemoveNoneOnStock,
		IgnoreList:                 []string(s.IgnoreList),
	}
}

// Settings converts the parameters into the user's SyncSettings row.
func (p Params) Settings(userID string) models.SyncSettings {
	return models.SyncSettings{
		UserID:                     userID,
		Mode:                       p.Mode,
		Rarity:                     p.Rarity,
		KeepItem:                   p.KeepItem,
		KeepRecipe:                 p.KeepRecipe,
		MainPriceItemID:            p.MainPriceItemID,
		MainPriceRecipeID:          p.MainPriceRecipeID,
		MainPriceAmountItem:        p.MainPriceAmountItem,
		MainPriceAmountRecipe:      p.MainPriceAmountRecipe,
		SecondaryPriceItemID:       p.SecondaryPriceItemID,
		SecondaryPriceRecipeID:     p.SecondaryPriceRecipeID,
		SecondaryPriceAmountItem:   p.SecondaryPriceAmountItem,
		SecondaryPriceAmountRecipe: p.SecondaryPriceAmountRecipe,
		WantsBothItem:              p.WantsBothItem,
		WantsBothRecipe:            p.WantsBothRecipe,
		IgnoreWishlistItems:        p.IgnoreWishlistItems,
		RemoveNoneOnStock:          p.RemoveNoneOnStock,
		IgnoreList:                 p.IgnoreList,
	}
}

// keepFor returns the keep threshold for the item's type.
func (p Params) keepFor(item *models.Item) int {
	if item != nil && item.IsRecipe() {
		return p.KeepRecipe
	}
	return p.KeepItem
}

// pricing is the type-specific slice of Params.
type pricing struct {
	mainID          uint
	mainAmount      *int
	secondaryID     *uint
	secondaryAmount *int
	wantsBoth       *bool
}

func (p Params) pricingFor(item models.Item) pricing {
	if item.IsRecipe() {
		return pricing{
			mainID:          p.MainPriceRecipeID,
			mainAmount:      p.MainPriceAmountRecipe,
			secondaryID:     p.SecondaryPriceRecipeID,
			secondaryAmount: p.SecondaryPriceAmountRecipe,
			wantsBoth:       p.WantsBothRecipe,
		}
	}
	return pricing{
		mainID:          p.MainPriceItemID,
		mainAmount:      p.MainPriceAmountItem,
		secondaryID:     p.SecondaryPriceItemID,
		secondaryAmount: p.SecondaryPriceAmountItem,
		wantsBoth:       p.WantsBothItem,
	}
}
