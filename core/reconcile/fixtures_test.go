package reconcile

import "github.com/GiyoMoon/WitchTrade-BE/core/models"

const (
	priceCommon uint = iota + 1
	priceUncommon
	priceRare
	priceVeryRare
	priceWhimsical
	priceCandy
	priceDynamicRarity
	priceDynamicEvent
	priceDynamicCharacter
	priceHunterToken
	priceWitchToken
	priceGold
	priceWishOnly
)

func testPrices() []models.Price {
	return []models.Price{
		{ID: priceCommon, PriceKey: "common", WithAmount: true, ForOffers: true, CanBeMain: true},
		{ID: priceUncommon, PriceKey: "uncommon", WithAmount: true, ForOffers: true, CanBeMain: true},
		{ID: priceRare, PriceKey: "rare", WithAmount: true, ForOffers: true, CanBeMain: true},
		{ID: priceVeryRare, PriceKey: "veryrare", WithAmount: true, ForOffers: true, CanBeMain: true},
		{ID: priceWhimsical, PriceKey: "whimsical", WithAmount: true, ForOffers: true, CanBeMain: true},
		{ID: priceCandy, PriceKey: "candy", WithAmount: true, ForOffers: true, CanBeMain: true},
		{ID: priceDynamicRarity, PriceKey: models.PriceKeyDynamicRarity, WithAmount: true, ForOffers: true, CanBeMain: true},
		{ID: priceDynamicEvent, PriceKey: models.PriceKeyDynamicEvent, WithAmount: true, ForOffers: true, CanBeMain: true},
		{ID: priceDynamicCharacter, PriceKey: models.PriceKeyDynamicCharacter, WithAmount: true, ForOffers: true, CanBeMain: true},
		{ID: priceHunterToken, PriceKey: "hunter_token", WithAmount: true, ForOffers: true, CanBeMain: true},
		{ID: priceWitchToken, PriceKey: "witch_token", WithAmount: true, ForOffers: true, CanBeMain: true},
		{ID: priceGold, PriceKey: "gold", ForOffers: true},
		{ID: priceWishOnly, PriceKey: "wishonly", ForWishes: true, CanBeMain: true},
	}
}

var itemHat = models.Item{
	ID: "hat_pumpkin", Tradeable: true, TagRarity: models.RarityCommon, TagSlot: models.SlotHat,
	TagCharacter: models.CharacterWitch, TagEvent: "halloween2019",
}

var itemBroom = models.Item{
	ID: "broom_star", Tradeable: true, TagRarity: models.RarityWhimsical, TagSlot: models.SlotBroom,
	TagCharacter: models.CharacterHunter,
}

var itemRecipe = models.Item{ID: "recipe_cake", Tradeable: true, TagRarity: models.RarityRare, TagSlot: models.SlotRecipe}

var itemIngredient = models.Item{ID: "ingredient_egg", Tradeable: true, TagRarity: models.RarityCommon, TagSlot: models.SlotIngredient}

var itemBound = models.Item{ID: "skin_founder", Tradeable: false, TagRarity: models.RarityVeryRare, TagSlot: models.SlotSkin}

func stock(item models.Item, amount int) models.InventoryItem {
	it := item
	return models.InventoryItem{ItemID: item.ID, Item: &it, Amount: amount}
}

func existing(id uint, item models.Item, quantity int) models.Offer {
	it := item
	return models.Offer{ID: id, MarketID: 1, ItemID: item.ID, Item: &it, Quantity: quantity, MainPriceID: priceCommon}
}

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }
func boolPtr(v bool) *bool { return &v }

func baseParams(mode models.SyncMode) Params {
	return Params{
		Mode:                  mode,
		Rarity:                AllRarities,
		KeepItem:              0,
		KeepRecipe:            0,
		MainPriceItemID:       priceCommon,
		MainPriceRecipeID:     priceRare,
		MainPriceAmountItem:   intPtr(1),
		MainPriceAmountRecipe: intPtr(1),
	}
}
