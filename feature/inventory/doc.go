// Package inventory stores the inventory snapshots pushed by the game's
// inventory sync. Offer synchronization reads the latest snapshot.
package inventory
