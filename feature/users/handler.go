package users

import (
	"github.com/GiyoMoon/WitchTrade-BE/core/middleware/auth"
	"github.com/GiyoMoon/WitchTrade-BE/core/request"
	"github.com/GiyoMoon/WitchTrade-BE/core/server"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for users.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the user routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/users")
	group.Post("/", h.HandleRegister)
	group.Get("/me", auth.RequireUser(), h.HandleGetMe)
	group.Get("/:id", h.HandleGet)
}

// HandleRegister registers a user.
// @Summary Register User
// @Tags users
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "User"
// @Success 201 {object} models.User "Registered user"
// @Failure 400 {object} map[string]string "Invalid or taken username"
// @Router /users [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := request.Parse(c, &req); err != nil {
		return server.RespondError(c, h.service.logger, err)
	}

	user, err := h.service.Register(c.UserContext(), req.Username)
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleGetMe returns the acting user.
// @Summary Get Current User
// @Tags users
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Success 200 {object} models.User "User"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /users/me [get]
func (h *Handler) HandleGetMe(c *fiber.Ctx) error {
	return h.respondUser(c, auth.UserID(c))
}

// HandleGet returns a user.
// @Summary Get User
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.User "User"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /users/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	return h.respondUser(c, c.Params("id"))
}

func (h *Handler) respondUser(c *fiber.Ctx, id string) error {
	user, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return server.RespondError(c, h.service.logger, err)
	}
	return c.JSON(user)
}
