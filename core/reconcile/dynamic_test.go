package reconcile

import (
	"testing"

	"github.com/GiyoMoon/WitchTrade-BE/core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrice(t *testing.T) {
	catalog := NewCatalog(testPrices())
	price := func(id uint) models.Price {
		p, ok := catalog.Price(id)
		require.True(t, ok)
		return *p
	}

	tests := []struct {
		name   string
		item   models.Item
		def    models.Price
		wantID uint
		wantOK bool
	}{
		{"Static price unchanged", itemHat, price(priceGold), priceGold, true},
		{"Rarity", itemBroom, price(priceDynamicRarity), priceWhimsical, true},
		{"Rarity without price", models.Item{TagRarity: "mythic"}, price(priceDynamicRarity), 0, false},
		{"Hunter character", itemBroom, price(priceDynamicCharacter), priceHunterToken, true},
		{"Witch character", itemHat, price(priceDynamicCharacter), priceWitchToken, true},
		{"No character", itemRecipe, price(priceDynamicCharacter), 0, false},
		{"Yearly event", itemHat, price(priceDynamicEvent), priceCandy, true},
		{"Other year same currency", models.Item{TagEvent: "halloween2021"}, price(priceDynamicEvent), priceCandy, true},
		{"Event currency not in catalog", models.Item{TagEvent: "winterdream2020"}, price(priceDynamicEvent), 0, false},
		{"Unmapped event", models.Item{TagEvent: "springfest"}, price(priceDynamicEvent), 0, false},
		{"Unknown dynamic key", itemHat, models.Price{ID: 99, PriceKey: "dynamicWeather"}, 99, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolvePrice(tt.item, tt.def, catalog)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.NotNil(t, got)
				assert.Equal(t, tt.wantID, got.ID)
			}

			// pure: a second call yields the same answer
			again, okAgain := ResolvePrice(tt.item, tt.def, catalog)
			assert.Equal(t, ok, okAgain)
			assert.Equal(t, got, again)
		})
	}
}

func TestCatalog_Resolve(t *testing.T) {
	catalog := NewCatalog(testPrices())

	p, ok := catalog.Resolve(itemRecipe, priceDynamicRarity)
	require.True(t, ok)
	assert.Equal(t, "rare", p.PriceKey)

	_, ok = catalog.Resolve(itemRecipe, 404)
	assert.False(t, ok)
}
