// Package catalog serves the item and price reference data and keeps it in
// sync with the catalog files in object storage.
//
// The catalog folder holds items.json and prices.json, each a JSON array in the
// API representation of the model. Import upserts both in one transaction and
// drops the cached price catalog used by offer pricing.
package catalog
