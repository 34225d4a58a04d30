package users

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"
	"github.com/GiyoMoon/WitchTrade-BE/core/database/dbtest"
	"github.com/GiyoMoon/WitchTrade-BE/core/middleware/auth"
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"
	"github.com/GiyoMoon/WitchTrade-BE/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegister(t *testing.T) {
	svc := NewService(repository.New(dbtest.New(t)), zap.NewNop())
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice")
	require.NoError(t, err)
	_, err = uuid.Parse(user.ID)
	assert.NoError(t, err)

	got, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Market)
	assert.NotZero(t, got.Market.ID)

	_, err = svc.Register(ctx, "alice")
	assert.True(t, apperr.Is(err, apperr.KindBadRequest))

	_, err = svc.Get(ctx, uuid.NewString())
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestHandlers(t *testing.T) {
	svc := NewService(repository.New(dbtest.New(t)), zap.NewNop())
	app := server.NewApp(server.Config{})
	app.Use(auth.New(auth.Config{}))
	NewHandler(svc).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("POST", "/users", strings.NewReader(`{"username":"a!"}`)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/users", strings.NewReader(`{"username":"witchy"}`)))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `"username":"witchy"`)

	user, err := svc.repo.FindUser(context.Background(), extractID(t, string(raw)))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/users/me", nil)
	req.Header.Set(auth.UserHeader, user.ID)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/users/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func extractID(t *testing.T, body string) string {
	t.Helper()
	const key = `"id":"`
	start := strings.Index(body, key)
	require.GreaterOrEqual(t, start, 0)
	rest := body[start+len(key):]
	return rest[:strings.Index(rest, `"`)]
}
