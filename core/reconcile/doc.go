// Package reconcile aligns a user's market offers with their inventory.
//
// Planning is pure; applying a plan (inside a transaction) is up to the caller,
// see feature/offers.
//
// # Planning
//
// BuildPlan takes a snapshot (inventory, existing offers, wishlist, price
// catalog) and the sync Params and returns a Plan: offers to create, quantity
// changes and offers to delete, each with an Action describing why. Nothing is
// persisted, so the same call backs dry runs.
//
// Two phases are gated by the sync mode:
//
//   - new: every qualifying inventory entry without an offer gets one, priced
//     from the configured main and secondary prices, for the amount above the
//     keep threshold.
//   - existing: every offer gets the quantity currently in stock; offers whose
//     item ran out are zeroed, or deleted when RemoveNoneOnStock is set.
//
// Wished items (when IgnoreWishlistItems is set) and ignore-listed items are never
// touched. Both phases honour the rarity mask, decoded by DecodeRarity.
//
// # Prices
//
// Catalog indexes price definitions. Keys starting with "dynamic" are
// placeholders resolved per item by ResolvePrice from its rarity, character or
// event tag. CatalogCache keeps the catalog in memory for a configurable TTL.
//
// # Usage
//
//	catalog, err := cache.Get(ctx)
//	if err := reconcile.ValidatePrices(params, catalog); err != nil {
//	    return err
//	}
//	plan := reconcile.BuildPlan(reconcile.Input{
//	    MarketID:  market.ID,
//	    Inventory: inventory.Items,
//	    Offers:    offers,
//	    Catalog:   catalog,
//	    Params:    params,
//	})
package reconcile
