package reconcile

import (
	"testing"

	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"
	"github.com/GiyoMoon/WitchTrade-BE/core/models"

	"github.com/stretchr/testify/assert"
)

func TestValidatePrices(t *testing.T) {
	catalog := NewCatalog(testPrices())

	tests := []struct {
		name   string
		modify func(p *Params)
		kind   apperr.Kind
	}{
		{"Valid", func(p *Params) {}, ""},
		{"Valid with secondary", func(p *Params) { p.SecondaryPriceItemID = uintPtr(priceGold) }, ""},
		{"Unknown main", func(p *Params) { p.MainPriceItemID = 404 }, apperr.KindNotFound},
		{"Unknown recipe main", func(p *Params) { p.MainPriceRecipeID = 404 }, apperr.KindNotFound},
		{"Main not eligible", func(p *Params) { p.MainPriceRecipeID = priceGold }, apperr.KindBadRequest},
		{"Unknown secondary", func(p *Params) { p.SecondaryPriceRecipeID = uintPtr(404) }, apperr.KindNotFound},
		{"Main not for offers", func(p *Params) { p.MainPriceItemID = priceWishOnly }, apperr.KindBadRequest},
		{"Secondary not for offers", func(p *Params) { p.SecondaryPriceItemID = uintPtr(priceWishOnly) }, apperr.KindBadRequest},
		{"Main amount missing", func(p *Params) { p.MainPriceAmountItem = nil }, apperr.KindBadRequest},
		{"Secondary amount missing", func(p *Params) { p.SecondaryPriceRecipeID = uintPtr(priceCandy) }, apperr.KindBadRequest},
		{"Secondary amount set", func(p *Params) {
			p.SecondaryPriceRecipeID = uintPtr(priceCandy)
			p.SecondaryPriceAmountRecipe = intPtr(2)
		}, ""},
		{"Dynamic main without amount", func(p *Params) {
			p.MainPriceItemID = priceDynamicRarity
			p.MainPriceAmountItem = nil
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := baseParams(models.SyncModeBoth)
			tt.modify(&params)

			err := ValidatePrices(params, catalog)
			if tt.kind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperr.Is(err, tt.kind), "got %v", err)
		})
	}
}
