package notifications

import (
	"context"

	"github.com/GiyoMoon/WitchTrade-BE/core/metrics"
	"github.com/GiyoMoon/WitchTrade-BE/core/models"
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Notifier derives wish notifications from offer changes. Failures are logged
// and never returned; an offer change is not undone because a notification
// could not be delivered.
type Notifier struct {
	repo   *repository.Repository
	sender Sender
	logger *zap.Logger
}

// NewNotifier creates a notifier delivering through sender.
func NewNotifier(repo *repository.Repository, sender Sender, logger *zap.Logger) *Notifier {
	return &Notifier{repo: repo, sender: sender, logger: logger}
}

// NotifyFor notifies every other user who wishes for an item that one of offers
// has in stock. Offers must belong to source's market. It sends once per
// matching wish, without checking for earlier sends, and returns the number of
// sends attempted.
func (n *Notifier) NotifyFor(ctx context.Context, offers []models.Offer, source *models.User) int {
	inStock := lo.Filter(offers, func(o models.Offer, _ int) bool { return o.Quantity > 0 })
	if len(inStock) == 0 {
		return 0
	}

	offered := lo.KeyBy(inStock, func(o models.Offer) string { return o.ItemID })
	wishes, err := n.repo.FindWishesForItems(ctx, lo.Keys(offered), inStock[0].MarketID)
	if err != nil {
		n.logger.Warn("Failed to look up wishes", zap.String("user", source.ID), zap.Error(err))
		return 0
	}

	sent := 0
	for _, wish := range wishes {
		if wish.Market == nil || wish.Item == nil {
			continue
		}
		if _, ok := offered[wish.ItemID]; !ok {
			continue
		}
		sent++
		if err := n.sender.SendNotification(ctx, wish.Market.UserID, source, wish.Item); err != nil {
			n.logger.Warn("Failed to send notification",
				zap.String("target", wish.Market.UserID),
				zap.String("item", wish.ItemID),
				zap.Error(err))
		}
	}
	return sent
}

// RetractFor deletes the notifications of userID about any of the offered
// items and returns how many were removed.
func (n *Notifier) RetractFor(ctx context.Context, offers []models.Offer, userID string) int64 {
	if len(offers) == 0 {
		return 0
	}

	itemIDs := lo.Uniq(lo.Map(offers, func(o models.Offer, _ int) string { return o.ItemID }))
	removed, err := n.repo.DeleteNotificationsFor(ctx, userID, itemIDs)
	if err != nil {
		n.logger.Warn("Failed to retract notifications", zap.String("user", userID), zap.Error(err))
		return 0
	}

	if removed > 0 {
		metrics.Notifications.WithLabelValues(metrics.ActionRetracted).Add(float64(removed))
	}
	return removed
}
