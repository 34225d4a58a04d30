package markets

import (
	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"
	"github.com/GiyoMoon/WitchTrade-BE/core/middleware/auth"
	"github.com/GiyoMoon/WitchTrade-BE/core/request"
	"github.com/GiyoMoon/WitchTrade-BE/core/server"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for markets.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the market routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/markets/:userId", h.HandleGet)

	own := app.Group("/market", auth.RequireUser())
	own.Get("/", h.HandleGetOwn)
	own.Patch("/", h.HandleUpdate)
	own.Post("/wishes", h.HandleCreateWish)
	own.Delete("/wishes/:id", h.HandleDeleteWish)
}

// HandleGet returns a user's market.
// @Summary Get Market
// @Tags markets
// @Produce json
// @Param userId path string true "Owner id"
// @Success 200 {object} models.Market "Market"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /markets/{userId} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	market, err := h.service.GetMarket(c.UserContext(), c.Params("userId"))
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.JSON(market)
}

// HandleGetOwn returns the acting user's market.
// @Summary Get Own Market
// @Tags markets
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Success 200 {object} models.Market "Market"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /market [get]
func (h *Handler) HandleGetOwn(c *fiber.Ctx) error {
	market, err := h.service.GetMarket(c.UserContext(), auth.UserID(c))
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.JSON(market)
}

// HandleUpdate updates the market notes.
// @Summary Update Market
// @Tags markets
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param body body UpdateRequest true "Notes"
// @Success 200 {object} models.Market "Market"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /market [patch]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateRequest
	if err := request.Parse(c, &req); err != nil {
		return server.RespondError(c, h.service.logger, err)
	}

	market, err := h.service.UpdateMarket(c.UserContext(), auth.UserID(c), req)
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.JSON(market)
}

// HandleCreateWish adds an item to the wishlist.
// @Summary Create Wish
// @Tags markets
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param body body WishRequest true "Wished item"
// @Success 201 {object} models.Wish "Wish"
// @Failure 400 {object} map[string]string "Already wished"
// @Failure 404 {object} map[string]string "Item not found"
// @Router /market/wishes [post]
func (h *Handler) HandleCreateWish(c *fiber.Ctx) error {
	var req WishRequest
	if err := request.Parse(c, &req); err != nil {
		return server.RespondError(c, h.service.logger, err)
	}

	wish, err := h.service.CreateWish(c.UserContext(), auth.UserID(c), req.ItemID)
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(wish)
}

// HandleDeleteWish removes an item from the wishlist.
// @Summary Delete Wish
// @Tags markets
// @Param X-User-ID header string true "Acting user id"
// @Param id path int true "Wish id"
// @Success 204 "Deleted"
// @Failure 401 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /market/wishes/{id} [delete]
func (h *Handler) HandleDeleteWish(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return server.RespondError(c, h.service.logger, apperr.BadRequest("invalid wish id"))
	}

	if err := h.service.DeleteWish(c.UserContext(), auth.UserID(c), uint(id)); err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
