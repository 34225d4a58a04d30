package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	before := testutil.ToFloat64(OfferChanges.WithLabelValues(ActionCreated))
	OfferChanges.WithLabelValues(ActionCreated).Add(2)
	assert.Equal(t, before+2, testutil.ToFloat64(OfferChanges.WithLabelValues(ActionCreated)))

	app := fiber.New()
	app.Get("/metrics", Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "witchtrade_offer_changes_total")
}
