package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// ApiKeyHeader carries the shared API key.
	ApiKeyHeader = "X-API-Key"
	// UserHeader carries the acting user's id, set by the gateway that authenticated them.
	UserHeader = "X-User-ID"

	userLocalsKey = "user_id"
)

// Config configures the auth middleware.
type Config struct {
	// ApiKey is the expected key. Empty disables the key check.
	ApiKey string
}

// New returns middleware that checks the API key and resolves the acting user.
// Requests without a user header pass through anonymously; handlers that need a
// user call UserID or RequireUser.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey != "" {
			key := c.Get(ApiKeyHeader)
			if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.ApiKey)) != 1 {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "invalid api key",
				})
			}
		}

		if raw := c.Get(UserHeader); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "invalid user id",
				})
			}
			c.Locals(userLocalsKey, id.String())
		}

		return c.Next()
	}
}

// UserID returns the acting user id, or "" for anonymous requests.
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(userLocalsKey).(string); ok {
		return id
	}
	return ""
}

// RequireUser rejects anonymous requests.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserID(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing user",
			})
		}
		return c.Next()
	}
}
