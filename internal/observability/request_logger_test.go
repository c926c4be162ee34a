package observability

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/estate-cms/pkg/util"
)

func TestRequestLoggerRecordsSuccessStatus(t *testing.T) {
	metrics := NewMetrics()
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), metrics))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	snap := metrics.Snapshot()
	assert.EqualValues(t, 1, snap.Requests["/ok|GET|204"])
}

func TestRequestLoggerRecordsErrorStatusFromReturnedError(t *testing.T) {
	metrics := NewMetrics()
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), metrics))
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("project")
	})

	_, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)

	// The handler error has not been written to the response yet when the
	// logger runs, so the counter must come from the error itself.
	snap := metrics.Snapshot()
	assert.EqualValues(t, 1, snap.Requests["/missing|GET|404"])
	assert.Zero(t, snap.Requests["/missing|GET|200"])
}
