// Package repository is the GORM data access layer of the marketplace.
//
// A Repository offers find, save and remove operations for users, markets,
// offers, wishes, catalog items and prices, inventories, notifications and sync
// settings. Lookups of single records wrap ErrNotFound, so services can map
// errors.Is(err, repository.ErrNotFound) to a NotFound response.
//
// Transaction hands out a repository bound to a database transaction; nesting
// Transaction on it opens a savepoint.
package repository
