package request

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notePayload struct {
	Note  string `json:"note" validate:"max=20,lines=2"`
	Count *int   `json:"count" validate:"required,min=0"`
}

func TestValidate(t *testing.T) {
	zero := 0
	neg := -1

	tests := []struct {
		name    string
		payload notePayload
		wantErr bool
	}{
		{"Valid", notePayload{Note: "hi\nthere", Count: &zero}, false},
		{"Too many lines", notePayload{Note: "a\nb\nc", Count: &zero}, true},
		{"Too long", notePayload{Note: strings.Repeat("x", 21), Count: &zero}, true},
		{"Missing count", notePayload{Note: "hi"}, true},
		{"Negative count", notePayload{Count: &neg}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(context.Background(), &tt.payload)
			if tt.wantErr {
				assert.True(t, apperr.Is(err, apperr.KindBadRequest))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var p notePayload
		if err := Parse(c, &p); err != nil {
			return c.Status(apperr.Status(err)).SendString(err.Error())
		}
		return c.SendString(p.Note)
	})

	t.Run("Valid", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"note":"ok","count":1}`))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Malformed", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"note":`))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestNewValidator_Lines(t *testing.T) {
	var v *validator.Validate
	require.NotPanics(t, func() { v = newValidator() })

	assert.NoError(t, v.Var("one\ntwo", "lines=2"))
	assert.Error(t, v.Var("one\ntwo\nthree", "lines=2"))
	// a malformed limit never passes
	assert.Error(t, v.Var("one", "lines=x"))
}
