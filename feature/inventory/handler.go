package inventory

import (
	"github.com/GiyoMoon/WitchTrade-BE/core/middleware/auth"
	"github.com/GiyoMoon/WitchTrade-BE/core/request"
	"github.com/GiyoMoon/WitchTrade-BE/core/server"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for inventories.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory", auth.RequireUser())
	group.Get("/", h.HandleGet)
	group.Put("/", h.HandleReplace)
}

// HandleGet returns the acting user's inventory.
// @Summary Get Inventory
// @Tags inventory
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Success 200 {object} models.Inventory "Inventory"
// @Failure 404 {object} map[string]string "No synced inventory"
// @Router /inventory [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	inv, err := h.service.Get(c.UserContext(), auth.UserID(c))
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.JSON(inv)
}

// HandleReplace stores a new inventory snapshot.
// @Summary Replace Inventory
// @Tags inventory
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param body body ReplaceRequest true "Snapshot"
// @Success 200 {object} models.Inventory "Inventory"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "User not found"
// @Router /inventory [put]
func (h *Handler) HandleReplace(c *fiber.Ctx) error {
	var req ReplaceRequest
	if err := request.Parse(c, &req); err != nil {
		return server.RespondError(c, h.service.logger, err)
	}

	inv, err := h.service.Replace(c.UserContext(), auth.UserID(c), req.Items)
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.JSON(inv)
}
