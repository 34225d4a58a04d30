package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "witchtrade"

var (
	// SyncRuns counts offer synchronizations by mode and outcome.
	SyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offer_sync_runs_total",
		Help:      "Offer synchronizations by mode and outcome.",
	}, []string{"mode", "outcome"})

	// OfferChanges counts offers created, updated and deleted by any mutation.
	OfferChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offer_changes_total",
		Help:      "Offers created, updated or deleted.",
	}, []string{"action"})

	// Notifications counts wish notifications sent and retracted.
	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Wish notifications sent or retracted.",
	}, []string{"action"})
)

// Label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionSent      = "sent"
	ActionRetracted = "retracted"
)

// Handler serves the default registry in the Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
