// Package markets serves a user's market: its notes, offers and wishlist.
package markets
