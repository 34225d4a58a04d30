package models

import "strings"

// Rarity tags in declaration order. The order is significant: bit i of a rarity
// mask (most significant bit first) selects Rarities[i].
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityVeryRare  = "veryrare"
	RarityWhimsical = "whimsical"
)

// Rarities lists every rarity tag in declaration order.
var Rarities = []string{RarityCommon, RarityUncommon, RarityRare, RarityVeryRare, RarityWhimsical}

// Slot tags.
const (
	SlotHat        = "hat"
	SlotHead       = "head"
	SlotBody       = "body"
	SlotSkin       = "skin"
	SlotBroom      = "broom"
	SlotSpray      = "spray"
	SlotPlayerIcon = "player_icon"
	SlotRecipe     = "recipe"
	SlotIngredient = "ingredient"
)

// Character tags.
const (
	CharacterHunter = "hunter"
	CharacterWitch  = "witch"
)

// DynamicPricePrefix marks price keys that are resolved per item at sync time.
const DynamicPricePrefix = "dynamic"

// Dynamic price keys.
const (
	PriceKeyDynamicRarity    = "dynamicRarity"
	PriceKeyDynamicCharacter = "dynamicCharacter"
	PriceKeyDynamicEvent     = "dynamicEvent"
)

// Item is a tradeable (or not) catalog entry.
type Item struct {
	ID           string `gorm:"primaryKey;column:id;type:varchar(64)" json:"id"`
	Name         string `gorm:"column:name;type:varchar(128)" json:"name"`
	Tradeable    bool   `gorm:"column:tradeable" json:"tradeable"`
	TagRarity    string `gorm:"column:tag_rarity;type:varchar(32);index" json:"tagRarity"`
	TagSlot      string `gorm:"column:tag_slot;type:varchar(32)" json:"tagSlot"`
	TagCharacter string `gorm:"column:tag_character;type:varchar(32)" json:"tagCharacter,omitempty"`
	TagEvent     string `gorm:"column:tag_event;type:varchar(64)" json:"tagEvent,omitempty"`
}

func (Item) TableName() string {
	return "items"
}

// IsRecipe reports whether the item sits in the recipe slot.
func (i Item) IsRecipe() bool {
	return i.TagSlot == SlotRecipe
}

// Price is a currency definition offers can be priced in.
type Price struct {
	ID         uint   `gorm:"primaryKey;column:id" json:"id"`
	PriceKey   string `gorm:"column:price_key;type:varchar(64);uniqueIndex" json:"priceKey"`
	WithAmount bool   `gorm:"column:with_amount" json:"withAmount"`
	ForOffers  bool   `gorm:"column:for_offers" json:"forOffers"`
	ForWishes  bool   `gorm:"column:for_wishes" json:"forWishes"`
	CanBeMain  bool   `gorm:"column:can_be_main" json:"canBeMain"`
	OrderID    int    `gorm:"column:order_id" json:"orderId"`
}

func (Price) TableName() string {
	return "prices"
}

// IsDynamic reports whether the price is a placeholder resolved from item tags.
func (p Price) IsDynamic() bool {
	return strings.HasPrefix(p.PriceKey, DynamicPricePrefix)
}
