package notifications

import (
	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"
	"github.com/GiyoMoon/WitchTrade-BE/core/middleware/auth"
	"github.com/GiyoMoon/WitchTrade-BE/core/server"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for notifications.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the notification routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/notifications", auth.RequireUser())
	group.Get("/", h.HandleList)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList returns the acting user's notifications.
// @Summary List Notifications
// @Description List notifications about wished items offered by other users, newest first.
// @Tags notifications
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Success 200 {array} models.Notification "Notifications"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /notifications [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext(), auth.UserID(c))
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.JSON(list)
}

// HandleDelete dismisses a notification.
// @Summary Delete Notification
// @Tags notifications
// @Param X-User-ID header string true "Acting user id"
// @Param id path int true "Notification id"
// @Success 204 "Deleted"
// @Failure 401 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /notifications/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return server.RespondError(c, h.service.logger, apperr.BadRequest("invalid notification id"))
	}

	if err := h.service.Delete(c.UserContext(), auth.UserID(c), uint(id)); err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
