package offers

import (
	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"
	"github.com/GiyoMoon/WitchTrade-BE/core/models"
	"github.com/GiyoMoon/WitchTrade-BE/core/reconcile"
)

// applyPricing validates req against the catalog and writes the prices of
// offer. offer.Item must be set; dynamic prices are resolved for it.
func applyPricing(offer *models.Offer, req PricingRequest, catalog *reconcile.Catalog) error {
	item := *offer.Item

	main, err := offerPrice(item, req.MainPriceID, "main", catalog)
	if err != nil {
		return err
	}
	if !main.def.CanBeMain {
		return apperr.BadRequest("price %s can't be used as main price", main.def.PriceKey)
	}
	mainAmount, err := priceAmount(main.resolved, req.MainPriceAmount, "main")
	if err != nil {
		return err
	}

	offer.MainPriceID = main.resolved.ID
	offer.MainPrice = main.resolved
	offer.MainPriceAmount = mainAmount
	offer.SecondaryPriceID = nil
	offer.SecondaryPrice = nil
	offer.SecondaryPriceAmount = nil
	offer.WantsBoth = nil

	if req.SecondaryPriceID == nil {
		return nil
	}

	secondary, err := offerPrice(item, *req.SecondaryPriceID, "secondary", catalog)
	if err != nil {
		return err
	}
	if secondary.resolved.ID == main.resolved.ID {
		return apperr.BadRequest("main and secondary price can't be the same")
	}
	if req.WantsBoth == nil {
		return apperr.BadRequest("wantsBoth is required if a secondary price is set")
	}
	secondaryAmount, err := priceAmount(secondary.resolved, req.SecondaryPriceAmount, "secondary")
	if err != nil {
		return err
	}

	secondaryID := secondary.resolved.ID
	wantsBoth := *req.WantsBoth
	offer.SecondaryPriceID = &secondaryID
	offer.SecondaryPrice = secondary.resolved
	offer.SecondaryPriceAmount = secondaryAmount
	offer.WantsBoth = &wantsBoth
	return nil
}

type pricedAs struct {
	def      *models.Price
	resolved *models.Price
}

func offerPrice(item models.Item, id uint, side string, catalog *reconcile.Catalog) (pricedAs, error) {
	def, ok := catalog.Price(id)
	if !ok {
		return pricedAs{}, apperr.NotFound("%s price %d not found", side, id)
	}
	if !def.ForOffers {
		return pricedAs{}, apperr.BadRequest("%s price %s is not for offers", side, def.PriceKey)
	}
	resolved, ok := reconcile.ResolvePrice(item, *def, catalog)
	if !ok {
		return pricedAs{}, apperr.BadRequest("%s price %s does not apply to item %s", side, def.PriceKey, item.ID)
	}
	return pricedAs{def: def, resolved: resolved}, nil
}

// priceAmount returns the amount to store: required for prices with an amount,
// dropped for the others.
func priceAmount(price *models.Price, amount *int, side string) (*int, error) {
	if !price.WithAmount {
		return nil, nil
	}
	if amount == nil {
		return nil, apperr.BadRequest("%s price %s needs a price amount", side, price.PriceKey)
	}
	v := *amount
	return &v, nil
}
