package reconcile

import (
	"fmt"

	"github.com/GiyoMoon/WitchTrade-BE/core/models"

	"github.com/samber/lo"
)

// BuildPlan computes the offer changes that align in.Offers with in.Inventory.
// It is pure: nothing is persisted and the input slices are not modified.
func BuildPlan(in Input) *Plan {
	p := in.Params
	plan := &Plan{}

	passesRarity := RarityFilter(p.Rarity)
	ignored := lo.SliceToMap(p.IgnoreList, func(id string) (string, struct{}) { return id, struct{}{} })
	wished := map[string]struct{}{}
	if p.IgnoreWishlistItems {
		wished = lo.SliceToMap(in.Wishlist, func(id string) (string, struct{}) { return id, struct{}{} })
	}
	protected := func(itemID string) bool {
		_, isWished := wished[itemID]
		_, isIgnored := ignored[itemID]
		return isWished || isIgnored
	}

	stock := lo.KeyBy(in.Inventory, func(e models.InventoryItem) string { return e.ItemID })
	offered := lo.KeyBy(in.Offers, func(o models.Offer) string { return o.ItemID })

	if p.Mode.CreatesOffers() {
		for _, entry := range in.Inventory {
			item := entry.Item
			if item == nil || protected(entry.ItemID) {
				continue
			}
			if _, ok := offered[entry.ItemID]; ok {
				continue
			}
			if !item.Tradeable || item.TagSlot == models.SlotIngredient || !passesRarity(item.TagRarity) {
				continue
			}

			keep := p.keepFor(item)
			if entry.Amount <= keep {
				continue
			}

			offer, ok := newOffer(in.MarketID, *item, max(entry.Amount-keep, 0), p, in.Catalog)
			if !ok {
				plan.Summary.Skipped++
				continue
			}
			plan.Create = append(plan.Create, offer)
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionCreate,
				Key:    item.ID,
				Reason: fmt.Sprintf("owns %d, keeps %d", entry.Amount, keep),
			})
		}
	}

	if p.Mode.ReconcilesOffers() {
		for _, offer := range in.Offers {
			rarity := ""
			if offer.Item != nil {
				rarity = offer.Item.TagRarity
			}
			if !passesRarity(rarity) || protected(offer.ItemID) {
				continue
			}

			entry, inInventory := stock[offer.ItemID]
			if !inInventory {
				switch {
				case p.RemoveNoneOnStock:
					plan.remove(offer, "absent from inventory")
				case offer.Quantity != 0:
					plan.update(offer, 0, "absent from inventory")
				}
				continue
			}

			keep := p.keepFor(offer.Item)
			inStock := max(entry.Amount-keep, 0)
			switch {
			case p.RemoveNoneOnStock && inStock == 0:
				plan.remove(offer, fmt.Sprintf("owns %d, keeps %d", entry.Amount, keep))
			case inStock != offer.Quantity:
				plan.update(offer, inStock, fmt.Sprintf("owns %d, keeps %d", entry.Amount, keep))
			}
		}
	}

	plan.Summary.Created = len(plan.Create)
	plan.Summary.Updated = len(plan.Update)
	plan.Summary.Deleted = len(plan.Delete)
	return plan
}

func (p *Plan) update(offer models.Offer, quantity int, reason string) {
	old := offer.Quantity
	offer.Quantity = quantity
	p.Update = append(p.Update, QuantityChange{Offer: offer, OldQuantity: old, NewQuantity: quantity})
	p.Actions = append(p.Actions, Action{
		Type:   ActionUpdate,
		Key:    offer.ItemID,
		Reason: fmt.Sprintf("%s: %d -> %d", reason, old, quantity),
	})
}

func (p *Plan) remove(offer models.Offer, reason string) {
	p.Delete = append(p.Delete, offer)
	p.Actions = append(p.Actions, Action{Type: ActionDelete, Key: offer.ItemID, Reason: reason})
}

// newOffer prices a new offer for item. It reports false when the configured
// main price does not resolve for the item, or resolves to a price that needs
// an amount while none is configured.
func newOffer(marketID uint, item models.Item, quantity int, p Params, catalog *Catalog) (models.Offer, bool) {
	cfg := p.pricingFor(item)

	main, ok := catalog.Resolve(item, cfg.mainID)
	if !ok || !main.ForOffers || (main.WithAmount && cfg.mainAmount == nil) {
		return models.Offer{}, false
	}

	offer := models.Offer{
		MarketID:    marketID,
		ItemID:      item.ID,
		Item:        &item,
		Quantity:    quantity,
		MainPriceID: main.ID,
		MainPrice:   main,
	}
	if main.WithAmount {
		offer.MainPriceAmount = cloneInt(cfg.mainAmount)
	}

	if cfg.secondaryID == nil {
		return offer, true
	}
	secondary, ok := catalog.Resolve(item, *cfg.secondaryID)
	if !ok || secondary.ID == main.ID || !secondary.ForOffers {
		return offer, true
	}
	if secondary.WithAmount && cfg.secondaryAmount == nil {
		return offer, true
	}

	secondaryID := secondary.ID
	offer.SecondaryPriceID = &secondaryID
	offer.SecondaryPrice = secondary
	if secondary.WithAmount {
		offer.SecondaryPriceAmount = cloneInt(cfg.secondaryAmount)
	}
	wantsBoth := cfg.wantsBoth != nil && *cfg.wantsBoth
	offer.WantsBoth = &wantsBoth

	return offer, true
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
