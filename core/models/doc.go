// Package models defines the GORM entities of the marketplace.
//
// Catalog data (Item, Price) is static reference data imported from object storage.
// Every User owns one Market, which holds the user's Offers and Wishes. Inventory is
// the snapshot pushed by the external inventory sync, SyncSettings the last
// parameters offers were synchronized with, and Notification the record of a wish
// match that was reported to a user.
package models
