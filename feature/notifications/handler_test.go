package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/GiyoMoon/WitchTrade-BE/core/middleware/auth"
	"github.com/GiyoMoon/WitchTrade-BE/core/models"
	"github.com/GiyoMoon/WitchTrade-BE/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(f *fixture) *fiber.App {
	app := server.NewApp(server.Config{})
	app.Use(auth.New(auth.Config{}))
	feature := NewFeature(f.repo, zap.NewNop())
	_ = feature.Load(app)
	return app
}

func TestHandlers(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sender := NewRecordSender(f.repo)
	require.NoError(t, sender.SendNotification(ctx, alice, f.users["bob"], &models.Item{ID: "hat"}))
	list, err := f.repo.ListNotifications(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	id := list[0].ID

	app := newTestApp(f)

	t.Run("List requires a user", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/notifications", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("List", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/notifications", nil)
		req.Header.Set(auth.UserHeader, alice)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), `"targetItemId":"hat"`)
		assert.Contains(t, string(body), `"username":"bob"`)
	})

	t.Run("Delete foreign notification", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", fmt.Sprintf("/notifications/%d", id), nil)
		req.Header.Set(auth.UserHeader, carol)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Delete invalid id", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/notifications/abc", nil)
		req.Header.Set(auth.UserHeader, alice)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Delete", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", fmt.Sprintf("/notifications/%d", id), nil)
		req.Header.Set(auth.UserHeader, alice)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

		req = httptest.NewRequest("DELETE", fmt.Sprintf("/notifications/%d", id), nil)
		req.Header.Set(auth.UserHeader, alice)
		resp, err = app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
