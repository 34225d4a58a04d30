package reconcile

import "github.com/GiyoMoon/WitchTrade-BE/core/models"

// characterCurrencies maps an item's character tag to the price key of the
// currency items of that character trade for.
var characterCurrencies = map[string]string{
	models.CharacterHunter: "hunter_token",
	models.CharacterWitch:  "witch_token",
}

// eventCurrencies maps an item's event tag to its event currency. Every yearly
// edition of an event shares one currency.
var eventCurrencies = map[string]string{
	"halloween2018":   "candy",
	"halloween2019":   "candy",
	"halloween2020":   "candy",
	"halloween2021":   "candy",
	"halloween2022":   "candy",
	"winterdream2018": "snowflake",
	"winterdream2019": "snowflake",
	"winterdream2020": "snowflake",
	"winterdream2021": "snowflake",
	"winterdream2022": "snowflake",
	"mysticsands":     "sand",
	"mysticsands2021": "sand",
	"plunderparty":    "doubloon",
}

// Catalog indexes the price definitions by id and key.
type Catalog struct {
	Prices []models.Price
	byID   map[uint]*models.Price
	byKey  map[string]*models.Price
}

// NewCatalog indexes prices.
func NewCatalog(prices []models.Price) *Catalog {
	c := &Catalog{
		Prices: prices,
		byID:   make(map[uint]*models.Price, len(prices)),
		byKey:  make(map[string]*models.Price, len(prices)),
	}
	for i := range prices {
		p := &c.Prices[i]
		c.byID[p.ID] = p
		c.byKey[p.PriceKey] = p
	}
	return c
}

// Price returns the price with the given id.
func (c *Catalog) Price(id uint) (*models.Price, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// PriceByKey returns the price with the given key.
func (c *Catalog) PriceByKey(key string) (*models.Price, bool) {
	p, ok := c.byKey[key]
	return p, ok
}

// Resolve looks up priceID and resolves it for item.
func (c *Catalog) Resolve(item models.Item, priceID uint) (*models.Price, bool) {
	def, ok := c.Price(priceID)
	if !ok {
		return nil, false
	}
	return ResolvePrice(item, *def, c)
}

// ResolvePrice returns the concrete price an item is offered for under def.
// Non-dynamic definitions are returned unchanged. Dynamic ones resolve from the
// item's rarity, character or event tag, and report false when no currency
// applies to the item.
func ResolvePrice(item models.Item, def models.Price, c *Catalog) (*models.Price, bool) {
	var key string
	switch def.PriceKey {
	case models.PriceKeyDynamicRarity:
		key = item.TagRarity
	case models.PriceKeyDynamicCharacter:
		key = characterCurrencies[item.TagCharacter]
	case models.PriceKeyDynamicEvent:
		key = eventCurrencies[item.TagEvent]
	default:
		if p, ok := c.Price(def.ID); ok {
			return p, true
		}
		return &def, true
	}

	if key == "" {
		return nil, false
	}
	return c.PriceByKey(key)
}
