package ratelimit

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/estate-cms/pkg/util"
)

func TestMemoryStoreCountsWithinWindow(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	ctx := context.Background()
	for i := int64(1); i <= 3; i++ {
		res, err := store.Hit(ctx, "ip:1.2.3.4|/api/leads", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, res.Count)
	}
}

func TestMemoryStoreIsolatesKeys(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	ctx := context.Background()
	_, err := store.Hit(ctx, "ip:1.2.3.4|/api/leads", time.Minute)
	require.NoError(t, err)

	res, err := store.Hit(ctx, "ip:5.6.7.8|/api/leads", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Count)
}

func TestMemoryStoreResetsAfterWindow(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	ctx := context.Background()
	window := 30 * time.Millisecond

	for i := 0; i < 3; i++ {
		_, err := store.Hit(ctx, "ip:1.2.3.4|/api/leads", window)
		require.NoError(t, err)
	}

	time.Sleep(window + 10*time.Millisecond)

	res, err := store.Hit(ctx, "ip:1.2.3.4|/api/leads", window)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Count, "a fresh window starts after expiry")
}

type failingStore struct{}

func (failingStore) Hit(context.Context, string, time.Duration) (Result, error) {
	return Result{}, errors.New("store down")
}

func newLimitedApp(store Store, limit Limit) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"success": false,
				"error":   domainErr.Message,
			})
		},
	})
	app.Post("/api/leads", Middleware(store, limit, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

func TestMiddlewareEnforcesQuota(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	app := newLimitedApp(store, Limit{Max: 3, Window: 15 * time.Minute})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/leads", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Equal(t, "3", resp.Header.Get("X-RateLimit-Limit"))
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/api/leads", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
}

func TestMiddlewareFailsOpenOnStoreError(t *testing.T) {
	app := newLimitedApp(failingStore{}, Limit{Max: 1, Window: time.Minute})

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/leads", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}
}

func TestMiddlewareKeysByPath(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	limit := Limit{Max: 1, Window: time.Minute}
	mw := Middleware(store, limit, zap.NewNop())

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.SendStatus(domainErr.HTTPStatus)
		},
	})
	app.Post("/api/leads", mw, func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })
	app.Post("/api/testimonials", mw, func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })

	resp, err := app.Test(httptest.NewRequest("POST", "/api/leads", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Quota on one endpoint does not consume the other's.
	resp, err = app.Test(httptest.NewRequest("POST", "/api/testimonials", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/api/leads", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
