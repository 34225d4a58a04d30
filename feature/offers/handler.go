package offers

import (
	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"
	"github.com/GiyoMoon/WitchTrade-BE/core/middleware/auth"
	"github.com/GiyoMoon/WitchTrade-BE/core/request"
	"github.com/GiyoMoon/WitchTrade-BE/core/server"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for offers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the offer routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/offers", auth.RequireUser())
	group.Post("/", h.HandleCreate)
	group.Delete("/", h.HandleDeleteAll)
	group.Post("/sync", h.HandleSync)
	group.Post("/sync/plan", h.HandlePlanSync)
	group.Get("/sync/settings", h.HandleGetSyncSettings)
	group.Patch("/:id", h.HandleEdit)
	group.Delete("/:id", h.HandleDelete)
}

// HandleCreate creates an offer.
// @Summary Create Offer
// @Description Offer an item of the acting user's market.
// @Tags offers
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param body body CreateOfferRequest true "Offer"
// @Success 201 {object} models.Offer "Created offer"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Item or price not found"
// @Router /offers [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req CreateOfferRequest
	if err := request.Parse(c, &req); err != nil {
		return server.RespondError(c, h.service.logger, err)
	}

	offer, err := h.service.CreateOffer(c.UserContext(), auth.UserID(c), req)
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(offer)
}

// HandleEdit replaces quantity and pricing of an offer.
// @Summary Edit Offer
// @Tags offers
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param id path int true "Offer id"
// @Param body body EditOfferRequest true "Offer"
// @Success 200 {object} models.Offer "Updated offer"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 401 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /offers/{id} [patch]
func (h *Handler) HandleEdit(c *fiber.Ctx) error {
	id, err := offerID(c)
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}

	var req EditOfferRequest
	if err := request.Parse(c, &req); err != nil {
		return server.RespondError(c, h.service.logger, err)
	}

	offer, err := h.service.EditOffer(c.UserContext(), auth.UserID(c), id, req)
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.JSON(offer)
}

// HandleDelete removes an offer.
// @Summary Delete Offer
// @Tags offers
// @Param X-User-ID header string true "Acting user id"
// @Param id path int true "Offer id"
// @Success 204 "Deleted"
// @Failure 401 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /offers/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := offerID(c)
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}

	if err := h.service.DeleteOffer(c.UserContext(), auth.UserID(c), id); err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteAll removes every offer of the acting user.
// @Summary Delete All Offers
// @Tags offers
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Success 200 {object} DeleteAllResult "Removed offers"
// @Failure 404 {object} map[string]string "User not found"
// @Router /offers [delete]
func (h *Handler) HandleDeleteAll(c *fiber.Ctx) error {
	n, err := h.service.DeleteAllOffers(c.UserContext(), auth.UserID(c))
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.JSON(DeleteAllResult{Deleted: n})
}

// HandleSync synchronizes the acting user's offers with their inventory.
// @Summary Sync Offers
// @Description Create, update and delete offers from the synced inventory and store the parameters as sync settings.
// @Tags offers
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param body body SyncRequest true "Sync parameters"
// @Success 200 {object} SyncResult "Sync result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "User or price not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /offers/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	var req SyncRequest
	if err := request.Parse(c, &req); err != nil {
		return server.RespondError(c, h.service.logger, err)
	}

	result, err := h.service.SyncOffers(c.UserContext(), auth.UserID(c), req.Params())
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.JSON(result)
}

// HandlePlanSync previews a sync.
// @Summary Plan Offer Sync
// @Description Compute the offer changes a sync would apply without applying them.
// @Tags offers
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param body body SyncRequest true "Sync parameters"
// @Success 200 {object} reconcile.Plan "Planned changes"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "User or price not found"
// @Router /offers/sync/plan [post]
func (h *Handler) HandlePlanSync(c *fiber.Ctx) error {
	var req SyncRequest
	if err := request.Parse(c, &req); err != nil {
		return server.RespondError(c, h.service.logger, err)
	}

	plan, err := h.service.PlanSync(c.UserContext(), auth.UserID(c), req.Params())
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.JSON(plan)
}

// HandleGetSyncSettings returns the parameters of the last sync.
// @Summary Get Sync Settings
// @Tags offers
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Success 200 {object} models.SyncSettings "Sync settings"
// @Failure 404 {object} map[string]string "No settings saved"
// @Router /offers/sync/settings [get]
func (h *Handler) HandleGetSyncSettings(c *fiber.Ctx) error {
	settings, err := h.service.GetSyncSettings(c.UserContext(), auth.UserID(c))
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.JSON(settings)
}

func offerID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperr.BadRequest("invalid offer id")
	}
	return uint(id), nil
}
