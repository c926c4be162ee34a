package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/estate-cms/internal/domain"
	apperrors "github.com/spec-kit/estate-cms/pkg/util"
)

const testCookie = "estate_session"

func newTestApp(mw fiber.Handler, handler fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"success": false,
				"error":   domainErr.Message,
			})
		},
	})
	app.Get("/protected", mw, handler)
	return app
}

func TestRequiredRejectsMissingToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	mw := NewMiddleware(tm, testCookie)

	handlerCalls := 0
	app := newTestApp(mw.Required, func(c *fiber.Ctx) error {
		handlerCalls++
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, handlerCalls, "handler must not run without a token")
}

func TestRequiredAcceptsBearerToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	mw := NewMiddleware(tm, testCookie)

	token, _, err := tm.GenerateToken("user-1", "sara@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	app := newTestApp(mw.Required, func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		assert.Equal(t, "user-1", identity.UserID)
		assert.Equal(t, domain.RoleAdmin, identity.Role)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequiredFallsBackToCookie(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	mw := NewMiddleware(tm, testCookie)

	token, _, err := tm.GenerateToken("user-2", "omar@example.com", domain.RoleEditor)
	require.NoError(t, err)

	app := newTestApp(mw.Required, func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		assert.Equal(t, "user-2", identity.UserID)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequiredRejectsGarbageToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	mw := NewMiddleware(tm, testCookie)

	app := newTestApp(mw.Required, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalContinuesWithoutToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	mw := NewMiddleware(tm, testCookie)

	app := newTestApp(mw.Optional, func(c *fiber.Ctx) error {
		_, ok := IdentityFromContext(c)
		assert.False(t, ok)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOptionalIgnoresInvalidToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	mw := NewMiddleware(tm, testCookie)

	app := newTestApp(mw.Optional, func(c *fiber.Ctx) error {
		_, ok := IdentityFromContext(c)
		assert.False(t, ok)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleEnforcesLadder(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	mw := NewMiddleware(tm, testCookie)

	token, _, err := tm.GenerateToken("user-3", "nina@example.com", domain.RoleEditor)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"success": false,
				"error":   domainErr.Message,
			})
		},
	})
	app.Get("/editor", mw.Required, RequireRole(domain.RoleEditor), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/admin", mw.Required, RequireRole(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/editor", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
