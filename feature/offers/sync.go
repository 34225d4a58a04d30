package offers

import (
	"context"
	"errors"

	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"
	"github.com/GiyoMoon/WitchTrade-BE/core/metrics"
	"github.com/GiyoMoon/WitchTrade-BE/core/models"
	"github.com/GiyoMoon/WitchTrade-BE/core/reconcile"
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// syncRun is a validated sync ready to be applied.
type syncRun struct {
	user    *models.User
	params  reconcile.Params
	catalog *reconcile.Catalog
	plan    *reconcile.Plan
}

// PlanSync computes the changes SyncOffers would apply without applying them.
func (s *Service) PlanSync(ctx context.Context, userID string, params reconcile.Params) (*reconcile.Plan, error) {
	run, err := s.prepareSync(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	return run.plan, nil
}

// SyncOffers aligns the user's offers with their inventory and stores params as
// their sync settings. Precondition failures abort before anything is written.
func (s *Service) SyncOffers(ctx context.Context, userID string, params reconcile.Params) (*SyncResult, error) {
	run, err := s.prepareSync(ctx, userID, params)
	if err != nil {
		metrics.SyncRuns.WithLabelValues(string(params.Mode), metrics.OutcomeFailure).Inc()
		return nil, err
	}
	plan := run.plan
	marketID := run.user.Market.ID

	settingsSaved := false
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.CreateOffers(ctx, plan.Create); err != nil {
			return err
		}
		for _, u := range plan.Update {
			if err := tx.UpdateOfferQuantity(ctx, u.Offer.ID, u.NewQuantity); err != nil {
				return err
			}
		}
		if err := tx.DeleteOffers(ctx, plan.Delete); err != nil {
			return err
		}
		if err := tx.TouchMarket(ctx, marketID, s.now()); err != nil {
			return err
		}

		settingsSaved = s.saveSettings(ctx, tx, run)
		return nil
	})
	if err != nil {
		metrics.SyncRuns.WithLabelValues(string(params.Mode), metrics.OutcomeFailure).Inc()
		return nil, apperr.Wrap(err, "failed to apply offer sync")
	}

	metrics.SyncRuns.WithLabelValues(string(params.Mode), metrics.OutcomeSuccess).Inc()
	metrics.OfferChanges.WithLabelValues(metrics.ActionCreated).Add(float64(len(plan.Create)))
	metrics.OfferChanges.WithLabelValues(metrics.ActionUpdated).Add(float64(len(plan.Update)))
	metrics.OfferChanges.WithLabelValues(metrics.ActionDeleted).Add(float64(len(plan.Delete)))

	changed := plan.Changed()
	s.notifier.NotifyFor(ctx, changed, run.user)

	emptied := lo.Filter(changed, func(o models.Offer, _ int) bool { return o.Quantity == 0 })
	s.notifier.RetractFor(ctx, append(emptied, plan.Delete...), userID)

	s.logger.Info("Offers synchronized",
		zap.String("user", userID),
		zap.String("mode", string(params.Mode)),
		zap.Int("created", plan.Summary.Created),
		zap.Int("updated", plan.Summary.Updated),
		zap.Int("deleted", plan.Summary.Deleted),
		zap.Int("skipped", plan.Summary.Skipped),
		zap.Bool("settings_saved", settingsSaved))

	return &SyncResult{
		NewOffers:     plan.Summary.Created,
		UpdatedOffers: plan.Summary.Updated,
		DeletedOffers: plan.Summary.Deleted,
		SkippedItems:  plan.Summary.Skipped,
		Created:       offerIDs(plan.Create),
		Updated: lo.Map(plan.Update, func(u reconcile.QuantityChange, _ int) UpdatedOffer {
			return UpdatedOffer{ID: u.Offer.ID, ItemID: u.Offer.ItemID, OldQuantity: u.OldQuantity, NewQuantity: u.NewQuantity}
		}),
		Deleted:       offerIDs(plan.Delete),
		SettingsSaved: settingsSaved,
	}, nil
}

// saveSettings stores the run's parameters under a savepoint. A failure is
// logged and leaves the offer changes of tx in place.
func (s *Service) saveSettings(ctx context.Context, tx *repository.Repository, run *syncRun) bool {
	if err := reconcile.ValidatePrices(run.params, run.catalog); err != nil {
		s.logger.Warn("Sync settings not saved", zap.String("user", run.user.ID), zap.Error(err))
		return false
	}

	settings := run.params.Settings(run.user.ID)
	err := tx.Transaction(ctx, func(inner *repository.Repository) error {
		return inner.SaveSyncSettings(ctx, &settings)
	})
	if err != nil {
		s.logger.Warn("Sync settings not saved", zap.String("user", run.user.ID), zap.Error(err))
		return false
	}
	return true
}

func (s *Service) prepareSync(ctx context.Context, userID string, params reconcile.Params) (*syncRun, error) {
	switch params.Mode {
	case models.SyncModeNew, models.SyncModeExisting, models.SyncModeBoth:
	default:
		return nil, apperr.BadRequest("unknown sync mode %q", params.Mode)
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	inventory, err := s.repo.FindInventory(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.BadRequest("user %s has no synced inventory", userID)
	}
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load inventory")
	}

	catalog, err := s.catalog.Get(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load prices")
	}
	if err := reconcile.ValidatePrices(params, catalog); err != nil {
		return nil, err
	}

	offers, err := s.repo.ListOffers(ctx, user.Market.ID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load offers")
	}

	var wishlist []string
	if params.IgnoreWishlistItems {
		wishlist, err = s.repo.ListWishItemIDs(ctx, user.Market.ID)
		if err != nil {
			return nil, apperr.Wrap(err, "failed to load wishlist")
		}
	}

	params.IgnoreList, err = s.tradeableOnly(ctx, params.IgnoreList)
	if err != nil {
		return nil, err
	}

	plan := reconcile.BuildPlan(reconcile.Input{
		MarketID:  user.Market.ID,
		Inventory: inventory.Items,
		Offers:    offers,
		Wishlist:  wishlist,
		Catalog:   catalog,
		Params:    params,
	})

	return &syncRun{user: user, params: params, catalog: catalog, plan: plan}, nil
}

// tradeableOnly drops ids of unknown and untradeable items.
func (s *Service) tradeableOnly(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	items, err := s.repo.FindItems(ctx, lo.Uniq(ids))
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load ignored items")
	}
	return lo.FilterMap(items, func(i models.Item, _ int) (string, bool) {
		return i.ID, i.Tradeable
	}), nil
}
