package catalog

import (
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"
	"github.com/GiyoMoon/WitchTrade-BE/core/server"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/items", h.HandleListItems)
	group.Get("/prices", h.HandleListPrices)
	group.Post("/import", h.HandleImport)
	group.Post("/export", h.HandleExport)
}

// HandleListItems lists catalog items.
// @Summary List Items
// @Tags catalog
// @Produce json
// @Param rarity query string false "Rarity tag"
// @Param slot query string false "Slot tag"
// @Param tradeable query bool false "Only tradeable items"
// @Success 200 {array} models.Item "Items"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/items [get]
func (h *Handler) HandleListItems(c *fiber.Ctx) error {
	items, err := h.service.ListItems(c.UserContext(), repository.ItemFilter{
		Rarity:        c.Query("rarity"),
		Slot:          c.Query("slot"),
		TradeableOnly: c.QueryBool("tradeable"),
	})
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.JSON(items)
}

// HandleListPrices lists price definitions.
// @Summary List Prices
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Price "Prices"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/prices [get]
func (h *Handler) HandleListPrices(c *fiber.Ctx) error {
	prices, err := h.service.ListPrices(c.UserContext())
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.JSON(prices)
}

// HandleImport imports the catalog files from storage.
// @Summary Import Catalog
// @Description Upsert items and prices from the catalog files in the storage bucket.
// @Tags catalog
// @Produce json
// @Success 200 {object} ImportResult "Imported rows"
// @Failure 400 {object} map[string]string "Invalid catalog file"
// @Failure 404 {object} map[string]string "Bucket not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	result, err := h.service.Import(c.UserContext())
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.JSON(result)
}

// HandleExport writes the catalog files to storage.
// @Summary Export Catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} ImportResult "Exported rows"
// @Failure 404 {object} map[string]string "Bucket not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	result, err := h.service.Export(c.UserContext())
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.JSON(result)
}
