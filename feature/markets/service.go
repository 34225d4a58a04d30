package markets

import (
	"context"
	"errors"
	"time"

	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"
	"github.com/GiyoMoon/WitchTrade-BE/core/models"
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"

	"go.uber.org/zap"
)

// UpdateRequest is the payload of PATCH /market. Omitted notes are kept.
type UpdateRequest struct {
	OfferlistNote *string `json:"offerlistNote" validate:"omitempty,max=200,lines=5"`
	WishlistNote  *string `json:"wishlistNote" validate:"omitempty,max=200,lines=5"`
}

// WishRequest is the payload of POST /market/wishes.
type WishRequest struct {
	ItemID string `json:"itemId" validate:"required,max=64"`
}

// Service handles market operations.
type Service struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewService creates a new market service.
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetMarket returns a user's market with offers and wishes.
func (s *Service) GetMarket(ctx context.Context, userID string) (*models.Market, error) {
	market, err := s.repo.FindMarketWithListings(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("market of user %s not found", userID)
	}
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load market")
	}
	return market, nil
}

// UpdateMarket replaces the notes given in req.
func (s *Service) UpdateMarket(ctx context.Context, userID string, req UpdateRequest) (*models.Market, error) {
	market, err := s.market(ctx, userID)
	if err != nil {
		return nil, err
	}

	offerlist, wishlist := market.OfferlistNote, market.WishlistNote
	if req.OfferlistNote != nil {
		offerlist = *req.OfferlistNote
	}
	if req.WishlistNote != nil {
		wishlist = *req.WishlistNote
	}

	if err := s.repo.UpdateMarketNotes(ctx, market.ID, offerlist, wishlist, time.Now()); err != nil {
		return nil, apperr.Wrap(err, "failed to update market")
	}
	return s.GetMarket(ctx, userID)
}

// CreateWish adds a tradeable item to the user's wishlist.
func (s *Service) CreateWish(ctx context.Context, userID, itemID string) (*models.Wish, error) {
	market, err := s.market(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindItem(ctx, itemID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Wrap(err, "failed to load item")
	}
	if item == nil || !item.Tradeable {
		return nil, apperr.NotFound("item %s not found or not tradeable", itemID)
	}

	exists, err := s.repo.WishExists(ctx, market.ID, itemID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to check wishes")
	}
	if exists {
		return nil, apperr.BadRequest("item %s is already on the wishlist", itemID)
	}

	wish := &models.Wish{MarketID: market.ID, ItemID: itemID, Item: item}
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.CreateWish(ctx, wish); err != nil {
			return err
		}
		return tx.TouchMarket(ctx, market.ID, time.Now())
	})
	if err != nil {
		return nil, apperr.Wrap(err, "failed to create wish")
	}
	return wish, nil
}

// DeleteWish removes a wish the user owns.
func (s *Service) DeleteWish(ctx context.Context, userID string, id uint) error {
	wish, err := s.repo.FindWish(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("wish %d not found", id)
	}
	if err != nil {
		return apperr.Wrap(err, "failed to load wish")
	}
	if wish.Market == nil || wish.Market.UserID != userID {
		return apperr.Unauthorized("wish %d belongs to another user", id)
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.DeleteWish(ctx, id); err != nil {
			return err
		}
		return tx.TouchMarket(ctx, wish.MarketID, time.Now())
	})
	if err != nil {
		return apperr.Wrap(err, "failed to delete wish")
	}
	return nil
}

func (s *Service) market(ctx context.Context, userID string) (*models.Market, error) {
	market, err := s.repo.FindMarketByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.BadRequest("user %s has no market", userID)
	}
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load market")
	}
	return market, nil
}
