package markets

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"
	"github.com/GiyoMoon/WitchTrade-BE/core/database/dbtest"
	"github.com/GiyoMoon/WitchTrade-BE/core/middleware/auth"
	"github.com/GiyoMoon/WitchTrade-BE/core/models"
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"
	"github.com/GiyoMoon/WitchTrade-BE/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	alice = "4c1d2e3f-5a6b-4c7d-8e9f-0a1b2c3d0001"
	bob   = "4c1d2e3f-5a6b-4c7d-8e9f-0a1b2c3d0002"
)

func setup(t *testing.T) *Service {
	db := dbtest.New(t)
	require.NoError(t, db.Create(&[]models.Item{
		{ID: "hat", Tradeable: true},
		{ID: "bound", Tradeable: false},
	}).Error)
	require.NoError(t, db.Create(&models.User{ID: alice, Username: "alice", Market: &models.Market{}}).Error)
	require.NoError(t, db.Create(&models.User{ID: bob, Username: "bob", Market: &models.Market{}}).Error)
	return NewService(repository.New(db), zap.NewNop())
}

func strPtr(s string) *string { return &s }

func TestUpdateMarket(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	market, err := svc.UpdateMarket(ctx, alice, UpdateRequest{OfferlistNote: strPtr("cheap hats")})
	require.NoError(t, err)
	assert.Equal(t, "cheap hats", market.OfferlistNote)
	assert.False(t, market.LastUpdated.IsZero())

	market, err = svc.UpdateMarket(ctx, alice, UpdateRequest{WishlistNote: strPtr("brooms please")})
	require.NoError(t, err)
	assert.Equal(t, "cheap hats", market.OfferlistNote)
	assert.Equal(t, "brooms please", market.WishlistNote)

	_, err = svc.UpdateMarket(ctx, "4c1d2e3f-5a6b-4c7d-8e9f-0a1b2c3d0099", UpdateRequest{})
	assert.True(t, apperr.Is(err, apperr.KindBadRequest))
}

func TestWishes(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	wish, err := svc.CreateWish(ctx, alice, "hat")
	require.NoError(t, err)
	assert.NotZero(t, wish.ID)

	_, err = svc.CreateWish(ctx, alice, "hat")
	assert.True(t, apperr.Is(err, apperr.KindBadRequest))

	_, err = svc.CreateWish(ctx, alice, "bound")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = svc.CreateWish(ctx, alice, "nope")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	market, err := svc.GetMarket(ctx, alice)
	require.NoError(t, err)
	require.Len(t, market.Wishes, 1)
	assert.Equal(t, "hat", market.Wishes[0].Item.ID)

	err = svc.DeleteWish(ctx, bob, wish.ID)
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))

	require.NoError(t, svc.DeleteWish(ctx, alice, wish.ID))

	err = svc.DeleteWish(ctx, alice, wish.ID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestHandlers(t *testing.T) {
	svc := setup(t)
	app := server.NewApp(server.Config{})
	app.Use(auth.New(auth.Config{}))
	NewHandler(svc).RegisterRoutes(app)

	tests := []struct {
		name   string
		method string
		path   string
		user   string
		body   string
		status int
	}{
		{"Public market", "GET", "/markets/" + bob, "", "", fiber.StatusOK},
		{"Unknown market", "GET", "/markets/nobody", "", "", fiber.StatusNotFound},
		{"Own market anonymous", "GET", "/market", "", "", fiber.StatusUnauthorized},
		{"Own market", "GET", "/market", alice, "", fiber.StatusOK},
		{"Note too long", "PATCH", "/market", alice, `{"offerlistNote":"` + strings.Repeat("a", 201) + `"}`, fiber.StatusBadRequest},
		{"Too many lines", "PATCH", "/market", alice, `{"wishlistNote":"1\n2\n3\n4\n5\n6"}`, fiber.StatusBadRequest},
		{"Update", "PATCH", "/market", alice, `{"wishlistNote":"1\n2\n3"}`, fiber.StatusOK},
		{"Wish", "POST", "/market/wishes", alice, `{"itemId":"hat"}`, fiber.StatusCreated},
		{"Wish without item", "POST", "/market/wishes", alice, `{}`, fiber.StatusBadRequest},
		{"Delete unknown wish", "DELETE", "/market/wishes/999", alice, "", fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.user != "" {
				req.Header.Set(auth.UserHeader, tt.user)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
