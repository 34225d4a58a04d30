package offers

import (
	"context"
	"errors"
	"time"

	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"
	"github.com/GiyoMoon/WitchTrade-BE/core/metrics"
	"github.com/GiyoMoon/WitchTrade-BE/core/models"
	"github.com/GiyoMoon/WitchTrade-BE/core/reconcile"
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Notifier sends and retracts wish notifications for changed offers.
type Notifier interface {
	NotifyFor(ctx context.Context, offers []models.Offer, source *models.User) int
	RetractFor(ctx context.Context, offers []models.Offer, userID string) int64
}

// Service handles offer operations.
type Service struct {
	repo     *repository.Repository
	catalog  *reconcile.CatalogCache
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a new offer service.
func NewService(repo *repository.Repository, catalog *reconcile.CatalogCache, notifier Notifier, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		catalog:  catalog,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateOffer offers an item of the user's market.
func (s *Service) CreateOffer(ctx context.Context, userID string, req CreateOfferRequest) (*models.Offer, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.OfferExists(ctx, user.Market.ID, req.ItemID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to check offers")
	}
	if exists {
		return nil, apperr.BadRequest("item %s is already offered", req.ItemID)
	}

	item, err := s.repo.FindItem(ctx, req.ItemID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Wrap(err, "failed to load item")
	}
	if item == nil || !item.Tradeable {
		return nil, apperr.NotFound("item %s not found or not tradeable", req.ItemID)
	}

	catalog, err := s.catalog.Get(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load prices")
	}

	offer := models.Offer{MarketID: user.Market.ID, ItemID: item.ID, Item: item, Quantity: req.Quantity}
	if err := applyPricing(&offer, req.PricingRequest, catalog); err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		created := []models.Offer{offer}
		if err := tx.CreateOffers(ctx, created); err != nil {
			return err
		}
		offer.ID = created[0].ID
		offer.CreatedAt = created[0].CreatedAt
		return tx.TouchMarket(ctx, user.Market.ID, s.now())
	})
	if errors.Is(err, repository.ErrDuplicate) {
		// a concurrent request offered the item after the check above
		return nil, apperr.BadRequest("item %s is already offered", req.ItemID)
	}
	if err != nil {
		return nil, apperr.Wrap(err, "failed to create offer")
	}
	metrics.OfferChanges.WithLabelValues(metrics.ActionCreated).Inc()

	if offer.Quantity > 0 {
		s.notifier.NotifyFor(ctx, []models.Offer{offer}, user)
	}
	return &offer, nil
}

// EditOffer replaces quantity and pricing of an offer the user owns.
func (s *Service) EditOffer(ctx context.Context, userID string, id uint, req EditOfferRequest) (*models.Offer, error) {
	offer, err := s.ownedOffer(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.Get(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load prices")
	}
	if err := applyPricing(offer, req.PricingRequest, catalog); err != nil {
		return nil, err
	}
	offer.Quantity = req.Quantity

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.SaveOffer(ctx, offer); err != nil {
			return err
		}
		return tx.TouchMarket(ctx, offer.MarketID, s.now())
	})
	if err != nil {
		return nil, apperr.Wrap(err, "failed to edit offer")
	}
	metrics.OfferChanges.WithLabelValues(metrics.ActionUpdated).Inc()

	if offer.Quantity == 0 {
		s.notifier.RetractFor(ctx, []models.Offer{*offer}, userID)
	} else {
		s.notifier.NotifyFor(ctx, []models.Offer{*offer}, user)
	}
	return offer, nil
}

// DeleteOffer removes an offer the user owns.
func (s *Service) DeleteOffer(ctx context.Context, userID string, id uint) error {
	offer, err := s.ownedOffer(ctx, userID, id)
	if err != nil {
		return err
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.DeleteOffers(ctx, []models.Offer{*offer}); err != nil {
			return err
		}
		return tx.TouchMarket(ctx, offer.MarketID, s.now())
	})
	if err != nil {
		return apperr.Wrap(err, "failed to delete offer")
	}
	metrics.OfferChanges.WithLabelValues(metrics.ActionDeleted).Inc()

	s.notifier.RetractFor(ctx, []models.Offer{*offer}, userID)
	return nil
}

// DeleteAllOffers removes every offer of the user's market and returns how many
// were removed.
func (s *Service) DeleteAllOffers(ctx context.Context, userID string) (int, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	offers, err := s.repo.ListOffers(ctx, user.Market.ID)
	if err != nil {
		return 0, apperr.Wrap(err, "failed to load offers")
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.DeleteOffers(ctx, offers); err != nil {
			return err
		}
		return tx.TouchMarket(ctx, user.Market.ID, s.now())
	})
	if err != nil {
		return 0, apperr.Wrap(err, "failed to delete offers")
	}
	metrics.OfferChanges.WithLabelValues(metrics.ActionDeleted).Add(float64(len(offers)))

	s.notifier.RetractFor(ctx, offers, userID)
	return len(offers), nil
}

// GetSyncSettings returns the parameters of the user's last sync.
func (s *Service) GetSyncSettings(ctx context.Context, userID string) (*models.SyncSettings, error) {
	settings, err := s.repo.FindSyncSettings(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("user %s has no sync settings", userID)
	}
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load sync settings")
	}
	return settings, nil
}

func (s *Service) loadUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repo.FindUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("user %s not found", userID)
	}
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load user")
	}
	if user.Market == nil {
		return nil, apperr.BadRequest("user %s has no market", userID)
	}
	return user, nil
}

func (s *Service) ownedOffer(ctx context.Context, userID string, id uint) (*models.Offer, error) {
	offer, err := s.repo.FindOffer(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("offer %d not found", id)
	}
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load offer")
	}
	if offer.Market == nil || offer.Market.UserID != userID {
		return nil, apperr.Unauthorized("offer %d belongs to another user", id)
	}
	return offer, nil
}

func offerIDs(offers []models.Offer) []uint {
	return lo.Map(offers, func(o models.Offer, _ int) uint { return o.ID })
}
