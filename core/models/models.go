package models

// All returns every persisted model in dependency order, for migrations and
// schema verification.
func All() []any {
	return []any{
		&Item{},
		&Price{},
		&User{},
		&Market{},
		&Offer{},
		&Wish{},
		&Inventory{},
		&InventoryItem{},
		&SyncSettings{},
		&Notification{},
	}
}
