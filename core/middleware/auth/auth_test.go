package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser = "1f0c7d5e-8e5b-4d7b-9a55-2f1f4c3b2a10"

func setupApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(New(Config{ApiKey: apiKey}))
	app.Get("/public", func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})
	app.Get("/private", RequireUser(), func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})
	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		key    string
		user   string
		path   string
		status int
	}{
		{"No key configured", "", "", "", "/public", 200},
		{"Wrong key", "secret", "nope", "", "/public", 401},
		{"Right key", "secret", "secret", "", "/public", 200},
		{"Invalid user", "", "", "not-a-uuid", "/public", 401},
		{"Anonymous private", "", "", "", "/private", 401},
		{"User private", "", "", testUser, "/private", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupApp(tt.apiKey)
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.key != "" {
				req.Header.Set(ApiKeyHeader, tt.key)
			}
			if tt.user != "" {
				req.Header.Set(UserHeader, tt.user)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
