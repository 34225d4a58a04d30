package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/GiyoMoon/WitchTrade-BE/core/models"

	"gorm.io/gorm"
)

// FindMarketByUser loads the market of a user.
func (r *Repository) FindMarketByUser(ctx context.Context, userID string) (*models.Market, error) {
	var market models.Market
	if err := r.conn(ctx).First(&market, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to find market of user %s: %w", userID, err)
	}
	return &market, nil
}

// FindMarketWithListings loads a user's market with offers and wishes.
func (r *Repository) FindMarketWithListings(ctx context.Context, userID string) (*models.Market, error) {
	var market models.Market
	err := r.conn(ctx).
		Preload("Offers", func(db *gorm.DB) *gorm.DB { return db.Order("offers.id") }).
		Preload("Offers.Item").
		Preload("Offers.MainPrice").
		Preload("Offers.SecondaryPrice").
		Preload("Wishes", func(db *gorm.DB) *gorm.DB { return db.Order("wishes.id") }).
		Preload("Wishes.Item").
		First(&market, "user_id = ?", userID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find market of user %s: %w", userID, err)
	}
	return &market, nil
}

// TouchMarket sets the market's last updated timestamp.
func (r *Repository) TouchMarket(ctx context.Context, marketID uint, at time.Time) error {
	err := r.conn(ctx).Model(&models.Market{}).Where("id = ?", marketID).Update("last_updated", at).Error
	if err != nil {
		return fmt.Errorf("failed to touch market %d: %w", marketID, err)
	}
	return nil
}

// UpdateMarketNotes stores both notes and the last updated timestamp.
func (r *Repository) UpdateMarketNotes(ctx context.Context, marketID uint, offerlistNote, wishlistNote string, at time.Time) error {
	err := r.conn(ctx).Model(&models.Market{}).Where("id = ?", marketID).Updates(map[string]any{
		"offerlist_note": offerlistNote,
		"wishlist_note":  wishlistNote,
		"last_updated":   at,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update market %d: %w", marketID, err)
	}
	return nil
}
