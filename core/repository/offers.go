package repository

import (
	"context"
	"fmt"

	"github.com/GiyoMoon/WitchTrade-BE/core/models"

	"github.com/samber/lo"
	"gorm.io/gorm/clause"
)

// FindOffer loads an offer with its market and item.
func (r *Repository) FindOffer(ctx context.Context, id uint) (*models.Offer, error) {
	var offer models.Offer
	if err := r.conn(ctx).Preload("Market").Preload("Item").First(&offer, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find offer %d: %w", id, err)
	}
	return &offer, nil
}

// OfferExists reports whether the market already offers the item.
func (r *Repository) OfferExists(ctx context.Context, marketID uint, itemID string) (bool, error) {
	var count int64
	err := r.conn(ctx).Model(&models.Offer{}).
		Where("market_id = ? AND item_id = ?", marketID, itemID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count offers: %w", err)
	}
	return count > 0, nil
}

// ListOffers loads every offer of a market with its item.
func (r *Repository) ListOffers(ctx context.Context, marketID uint) ([]models.Offer, error) {
	var offers []models.Offer
	err := r.conn(ctx).Preload("Item").Where("market_id = ?", marketID).Order("id").Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list offers of market %d: %w", marketID, err)
	}
	return offers, nil
}

// CreateOffers inserts offers and fills in their ids. Loaded relations are not written.
func (r *Repository) CreateOffers(ctx context.Context, offers []models.Offer) error {
	if len(offers) == 0 {
		return nil
	}
	if err := r.conn(ctx).Omit(clause.Associations).Create(&offers).Error; err != nil {
		return fmt.Errorf("failed to create offers: %w", err)
	}
	return nil
}

// SaveOffer writes every column of an existing offer.
func (r *Repository) SaveOffer(ctx context.Context, offer *models.Offer) error {
	if err := r.conn(ctx).Omit(clause.Associations).Save(offer).Error; err != nil {
		return fmt.Errorf("failed to save offer %d: %w", offer.ID, err)
	}
	return nil
}

// UpdateOfferQuantity sets the quantity of one offer.
func (r *Repository) UpdateOfferQuantity(ctx context.Context, id uint, quantity int) error {
	err := r.conn(ctx).Model(&models.Offer{}).Where("id = ?", id).Update("quantity", quantity).Error
	if err != nil {
		return fmt.Errorf("failed to update quantity of offer %d: %w", id, err)
	}
	return nil
}

// DeleteOffers removes the given offers.
func (r *Repository) DeleteOffers(ctx context.Context, offers []models.Offer) error {
	if len(offers) == 0 {
		return nil
	}
	ids := lo.Map(offers, func(o models.Offer, _ int) uint { return o.ID })
	if err := r.conn(ctx).Where("id IN ?", ids).Delete(&models.Offer{}).Error; err != nil {
		return fmt.Errorf("failed to delete offers: %w", err)
	}
	return nil
}
