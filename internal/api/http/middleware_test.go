package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/estate-cms/internal/config"
	"github.com/spec-kit/estate-cms/internal/observability"
	apperrors "github.com/spec-kit/estate-cms/pkg/util"
)

func newTestApp() *fiber.App {
	cfg := &config.Config{
		App: config.AppConfig{RequestTimeoutSeconds: 5},
		CORS: config.CORSConfig{
			AllowOrigin:  "*",
			AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
			AllowHeaders: "Authorization, Content-Type",
		},
	}
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), cfg)
	return app
}

func decodeEnvelope(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope
}

func TestPreflightShortCircuits(t *testing.T) {
	app := newTestApp()
	handlerCalls := 0
	app.Post("/api/leads", func(c *fiber.Ctx) error {
		handlerCalls++
		return c.SendStatus(fiber.StatusCreated)
	})

	resp, err := app.Test(httptest.NewRequest("OPTIONS", "/api/leads", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, handlerCalls, "preflight must not reach the handler")

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, PATCH, DELETE, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Authorization, Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestCORSHeadersOnRegularResponses(t *testing.T) {
	app := newTestApp()
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestErrorEnvelopeShape(t *testing.T) {
	app := newTestApp()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("project")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	envelope := decodeEnvelope(t, resp.Body)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "project not found", envelope["error"])
}

func TestUnknownErrorsBecomeInternal(t *testing.T) {
	app := newTestApp()
	app.Get("/broken", func(c *fiber.Ctx) error {
		return assert.AnError
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/broken", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	envelope := decodeEnvelope(t, resp.Body)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "internal server error", envelope["error"])
}

func TestPanicRecovery(t *testing.T) {
	app := newTestApp()
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	envelope := decodeEnvelope(t, resp.Body)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "internal server error", envelope["error"])
}
