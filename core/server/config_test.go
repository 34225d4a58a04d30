package server_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"
	"github.com/GiyoMoon/WitchTrade-BE/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfig_BodyLimit(t *testing.T) {
	assert.Equal(t, 4*1024*1024, server.Config{}.BodyLimit())
	assert.Equal(t, 2*1024*1024, server.Config{BodyLimitMB: 2}.BodyLimit())
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"NotFound", apperr.NotFound("offer not found"), 404, `{"error":"offer not found"}`},
		{"Unauthorized", apperr.Unauthorized("not your offer"), 401, `{"error":"not your offer"}`},
		{"Internal", errors.New("dial tcp: refused"), 500, `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := server.NewApp(server.Config{})
			app.Get("/", func(c *fiber.Ctx) error {
				return server.RespondError(c, zap.NewNop(), tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			assert.JSONEq(t, tt.body, string(body))
		})
	}
}
