package reconcile

import "github.com/GiyoMoon/WitchTrade-BE/core/apperr"

// ValidatePrices checks the prices the parameters reference: they must exist
// and be usable for offers, main prices must be eligible as main, and a fixed
// price carrying an amount needs one configured. Dynamic prices only learn
// whether they need an amount once resolved per item, see newOffer.
func ValidatePrices(p Params, catalog *Catalog) error {
	mains := []struct {
		id     uint
		amount *int
	}{
		{p.MainPriceItemID, p.MainPriceAmountItem},
		{p.MainPriceRecipeID, p.MainPriceAmountRecipe},
	}
	for _, m := range mains {
		if err := checkPrice(catalog, "main", m.id, m.amount, true); err != nil {
			return err
		}
	}

	secondaries := []struct {
		id     *uint
		amount *int
	}{
		{p.SecondaryPriceItemID, p.SecondaryPriceAmountItem},
		{p.SecondaryPriceRecipeID, p.SecondaryPriceAmountRecipe},
	}
	for _, s := range secondaries {
		if s.id == nil {
			continue
		}
		if err := checkPrice(catalog, "secondary", *s.id, s.amount, false); err != nil {
			return err
		}
	}

	return nil
}

func checkPrice(catalog *Catalog, side string, id uint, amount *int, main bool) error {
	price, ok := catalog.Price(id)
	if !ok {
		return apperr.NotFound("price %d not found", id)
	}
	if !price.ForOffers {
		return apperr.BadRequest("%s price %s is not for offers", side, price.PriceKey)
	}
	if main && !price.CanBeMain {
		return apperr.BadRequest("price %s can't be used as main price", price.PriceKey)
	}
	if price.WithAmount && !price.IsDynamic() && amount == nil {
		return apperr.BadRequest("%s price %s needs a price amount", side, price.PriceKey)
	}
	return nil
}
